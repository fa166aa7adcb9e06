// Package i18n holds the static French/Arabic label table for the UI.
// The table is fixed at compile time; lookups that miss return the key
// itself so a missing translation is visible instead of silent.
package i18n

// Lang is a supported interface language tag.
type Lang string

const (
	French Lang = "fr"
	Arabic Lang = "ar"
)

// ParseLang normalizes a language tag, defaulting to French.
func ParseLang(s string) Lang {
	if s == string(Arabic) {
		return Arabic
	}
	return French
}

// Toggle returns the other supported language.
func (l Lang) Toggle() Lang {
	if l == French {
		return Arabic
	}
	return French
}

// RTL reports whether the language is written right-to-left.
func (l Lang) RTL() bool { return l == Arabic }

type entry struct {
	fr, ar string
}

// T returns the label for key in the given language, or the key itself
// when no translation exists.
func T(key string, lang Lang) string {
	e, ok := table[key]
	if !ok {
		return key
	}
	if lang == Arabic {
		return e.ar
	}
	return e.fr
}

var table = map[string]entry{
	// Header
	"appTitle": {"Gestion des Dossiers Médicaux", "إدارة السجلات الطبية"},
	"language": {"Langue", "اللغة"},
	"french":   {"Français", "فرنسي"},
	"arabic":   {"Arabe", "عربي"},

	// CIN search
	"searchTitle":         {"Rechercher un Patient", "البحث عن مريض"},
	"cinLabel":            {"Numéro CIN", "رقم بطاقة التعريف الوطنية"},
	"cinPlaceholder":      {"Entrez le numéro CIN", "أدخل رقم بطاقة التعريف"},
	"searchButton":        {"Rechercher", "بحث"},
	"patientNotFound":     {"Patient non trouvé", "لم يتم العثور على المريض"},
	"patientNotFoundDesc": {"Aucun patient trouvé avec ce numéro CIN. Veuillez vérifier et réessayer.", "لم يتم العثور على مريض بهذا الرقم. يرجى التحقق والمحاولة مرة أخرى."},
	"tryExamples":         {"Essayez ces CIN d'exemple :", "جرب هذه الأرقام التجريبية:"},

	// Patient info
	"patientInfo":  {"Informations du Patient", "معلومات المريض"},
	"name":         {"Nom", "الاسم"},
	"cin":          {"CIN", "رقم البطاقة"},
	"dateOfBirth":  {"Date de naissance", "تاريخ الميلاد"},
	"gender":       {"Sexe", "الجنس"},
	"male":         {"Masculin", "ذكر"},
	"female":       {"Féminin", "أنثى"},
	"backToSearch": {"Retour à la recherche", "العودة للبحث"},

	// Medical records
	"medicalRecords": {"Dossiers Médicaux", "السجلات الطبية"},
	"addNewRecord":   {"Ajouter un Dossier", "إضافة سجل"},
	"noRecords":      {"Aucun dossier médical disponible", "لا توجد سجلات طبية"},
	"date":           {"Date", "التاريخ"},
	"hospital":       {"Hôpital", "المستشفى"},
	"department":     {"Département", "القسم"},
	"diagnosis":      {"Diagnostic", "التشخيص"},
	"notes":          {"Notes", "ملاحظات"},

	// Add-record form
	"addRecordTitle":        {"Ajouter un Nouveau Dossier Médical", "إضافة سجل طبي جديد"},
	"datePlaceholder":       {"Sélectionnez la date", "اختر التاريخ"},
	"hospitalPlaceholder":   {"Ex: Hôpital Habib Thameur...", "مثال: مستشفى الحبيب ثامر..."},
	"departmentPlaceholder": {"Ex: Cardiologie, Orthopédie...", "مثال: أمراض القلب، جراحة العظام..."},
	"diagnosisPlaceholder":  {"Entrez le diagnostic", "أدخل التشخيص"},
	"notesPlaceholder":      {"Entrez les notes et observations...", "أدخل الملاحظات والتفاصيل..."},
	"cancel":                {"Annuler", "إلغاء"},
	"save":                  {"Enregistrer", "حفظ"},
	"recordAdded":           {"Dossier ajouté avec succès", "تم إضافة السجل بنجاح"},
	"recordAddedDesc":       {"Le nouveau dossier médical a été enregistré.", "تم حفظ السجل الطبي الجديد."},

	// Chatbot
	"chatbotTitle":       {"Assistant Médical IA", "المساعد الطبي الذكي"},
	"chatbotButton":      {"Consulter l'Assistant IA", "استشر المساعد الذكي"},
	"chatbotWelcome":     {"Bonjour! Je suis votre assistant médical virtuel. Comment puis-je vous aider aujourd'hui?", "مرحباً! أنا مساعدك الطبي الافتراضي. كيف يمكنني مساعدتك اليوم؟"},
	"chatbotPlaceholder": {"Décrivez vos symptômes...", "صف أعراضك..."},
	"chatbotSend":        {"Envoyer", "إرسال"},
	"chatbotDisclaimer":  {"Remarque : Ceci est un assistant virtuel à titre informatif uniquement. Consultez toujours un professionnel de la santé pour un diagnostic médical.", "ملاحظة: هذا مساعد افتراضي لأغراض إعلامية فقط. استشر دائماً أخصائي صحة للحصول على تشخيص طبي."},
	"chatbotTyping":      {"En train d'écrire...", "يكتب..."},

	// Role selection
	"roleSelectionTitle":    {"Bienvenue", "مرحباً"},
	"roleSelectionSubtitle": {"Veuillez sélectionner votre rôle", "يرجى اختيار دورك"},
	"doctorRole":            {"Médecin", "طبيب"},
	"patientRole":           {"Patient", "مريض"},
	"doctorDescription":     {"Accès complet aux dossiers des patients", "وصول كامل لسجلات المرضى"},
	"patientDescription":    {"Consulter vos dossiers et l'assistant IA", "استعرض سجلاتك واستشر المساعد الذكي"},

	// Patient login
	"patientLoginTitle":    {"Connexion Patient", "تسجيل دخول المريض"},
	"patientLoginSubtitle": {"Entrez votre numéro CIN pour accéder à vos dossiers", "أدخل رقم بطاقة التعريف للوصول إلى سجلاتك"},
	"loginButton":          {"Se connecter", "تسجيل الدخول"},
	"backToRoleSelection":  {"Retour au choix du rôle", "العودة لاختيار الدور"},

	// User info
	"loggedInAs": {"Connecté en tant que", "متصل كـ"},
	"logout":     {"Déconnexion", "تسجيل خروج"},

	// Attachments
	"attachments":        {"Pièces jointes", "المرفقات"},
	"viewAttachment":     {"Voir", "عرض"},
	"downloadAttachment": {"Télécharger", "تحميل"},
	"noAttachments":      {"Aucune pièce jointe", "لا توجد مرفقات"},
	"attachmentTypes":    {"Types de fichiers", "أنواع الملفات"},
	"xrayLabel":          {"Radiographie", "أشعة سينية"},
	"scanLabel":          {"Échographie", "تصوير بالموجات فوق الصوتية"},
	"labLabel":           {"Analyses", "تحليلات"},
	"ecgLabel":           {"ECG", "تخطيط القلب"},
	"documentLabel":      {"Document", "مستند"},
	"prescriptionLabel":  {"Ordonnance", "وصفة طبية"},
}
