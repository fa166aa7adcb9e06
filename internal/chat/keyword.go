package chat

import (
	"context"
	"strings"

	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/i18n"
)

// KeywordResponder classifies the user's message by substring matching
// against a fixed keyword table and returns the matching canned advice
// block. It is deterministic, offline, and free — the default when no
// Gemini key is configured.
type KeywordResponder struct{}

// NewKeywordResponder returns the local rule-based responder.
func NewKeywordResponder() *KeywordResponder { return &KeywordResponder{} }

type adviceRule struct {
	keywords []string
	fr, ar   string
}

// Rules are checked in order; the first keyword hit wins. Keywords are
// matched lowercased, so French entries stay accent-sensitive on
// purpose ("tête" only matches "tête").
var adviceRules = []adviceRule{
	{
		keywords: []string{"tête", "migraine", "céphalée", "رأس", "صداع"},
		fr: "Pour les maux de tête :\n" +
			"- Reposez-vous dans une pièce calme et sombre.\n" +
			"- Hydratez-vous régulièrement.\n" +
			"- Un antalgique simple (paracétamol) peut soulager.\n" +
			"- Consultez un médecin si la douleur est brutale, inhabituelle ou accompagnée de fièvre, de troubles de la vision ou de vomissements.",
		ar: "لآلام الرأس:\n" +
			"- استرح في غرفة هادئة ومظلمة.\n" +
			"- اشرب الماء بانتظام.\n" +
			"- يمكن لمسكن بسيط (باراسيتامول) أن يخفف الألم.\n" +
			"- استشر طبيباً إذا كان الألم مفاجئاً أو غير معتاد أو مصحوباً بحمى أو اضطراب في الرؤية أو قيء.",
	},
	{
		keywords: []string{"fièvre", "fievre", "grippe", "température", "حمى", "حرارة"},
		fr: "En cas de fièvre :\n" +
			"- Reposez-vous et buvez beaucoup d'eau.\n" +
			"- Le paracétamol aide à faire baisser la température.\n" +
			"- Consultez si la fièvre dépasse 39°C ou dure plus de trois jours.",
		ar: "في حالة الحمى:\n" +
			"- استرح واشرب كمية كافية من الماء.\n" +
			"- يساعد الباراسيتامول على خفض الحرارة.\n" +
			"- استشر طبيباً إذا تجاوزت الحرارة 39 درجة أو استمرت أكثر من ثلاثة أيام.",
	},
	{
		keywords: []string{"ventre", "estomac", "nausée", "nausee", "diarrhée", "diarrhee", "بطن", "معدة", "غثيان"},
		fr: "Pour les douleurs abdominales :\n" +
			"- Privilégiez une alimentation légère et de l'eau.\n" +
			"- Évitez les repas gras et épicés.\n" +
			"- Consultez rapidement si la douleur est intense, localisée ou accompagnée de fièvre.",
		ar: "لآلام البطن:\n" +
			"- اعتمد على أكل خفيف واشرب الماء.\n" +
			"- تجنب الوجبات الدسمة والحارة.\n" +
			"- استشر طبيباً بسرعة إذا كان الألم شديداً أو موضعياً أو مصحوباً بحمى.",
	},
	{
		keywords: []string{"cœur", "coeur", "poitrine", "palpitation", "قلب", "صدر"},
		fr: "Pour les douleurs thoraciques ou palpitations :\n" +
			"- Asseyez-vous et respirez calmement.\n" +
			"- Une douleur thoracique intense, prolongée ou irradiant vers le bras ou la mâchoire est une urgence : appelez le 190.",
		ar: "لآلام الصدر أو الخفقان:\n" +
			"- اجلس وتنفس بهدوء.\n" +
			"- ألم الصدر الشديد أو المستمر أو الممتد نحو الذراع أو الفك حالة طارئة: اتصل بالرقم 190.",
	},
	{
		keywords: []string{"peau", "éruption", "eruption", "démangeaison", "demangeaison", "جلد", "حكة"},
		fr: "Pour les problèmes de peau :\n" +
			"- Évitez de gratter la zone concernée.\n" +
			"- Lavez à l'eau tiède, sans savon agressif.\n" +
			"- Consultez un dermatologue si l'éruption s'étend ou persiste.",
		ar: "لمشاكل الجلد:\n" +
			"- تجنب حك المنطقة المصابة.\n" +
			"- اغسلها بماء فاتر دون صابون قاسٍ.\n" +
			"- استشر طبيب جلد إذا انتشر الطفح أو استمر.",
	},
}

// Default clarifying reply when no keyword set matches.
const (
	defaultReplyFR = "Je n'ai pas bien compris vos symptômes. Pouvez-vous les décrire plus précisément (par exemple : mal de tête, fièvre, douleur au ventre) ? Pour tout problème sérieux, consultez un professionnel de santé."
	defaultReplyAR = "لم أفهم أعراضك جيداً. هل يمكنك وصفها بدقة أكبر (مثلاً: صداع، حمى، ألم في البطن)؟ لأي مشكلة خطيرة، استشر أخصائي صحة."
)

// Respond never fails: an unmatched input gets the default clarifying
// reply, never an empty string. The context is unused — matching is
// local and immediate.
func (r *KeywordResponder) Respond(_ context.Context, text string, lang i18n.Lang) string {
	lowered := strings.ToLower(text)
	for _, rule := range adviceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				if lang == i18n.Arabic {
					return rule.ar
				}
				return rule.fr
			}
		}
	}
	if lang == i18n.Arabic {
		return defaultReplyAR
	}
	return defaultReplyFR
}
