package recipe

import (
	"strings"

	"recipe-finder/internal/pkg/common"
)

const (
	noSubstituteName  = "لم نتمكن من إيجاد بدائل محددة لهذا المكون"
	noSubstituteRatio = "غير متوفر"
)

type substitutionEntry struct {
	key    string
	result common.SubstitutionResult
}

// substitutionTable 常見食材替代表，依序比對
var substitutionTable = []substitutionEntry{
	{"دقيق", common.SubstitutionResult{OriginalIngredient: "دقيق أبيض", Substitutes: []common.Substitute{
		{Name: "دقيق القمح الكامل", Ratio: "1:1", Notes: "سيجعل الطعام أكثر كثافة وسيعطي نكهة أقوى"},
		{Name: "دقيق اللوز", Ratio: "1:1", Notes: "خيار منخفض الكربوهيدرات، مناسب للأطعمة الخالية من الغلوتين"},
		{Name: "دقيق الذرة", Ratio: "3/4 كوب دقيق ذرة لكل كوب دقيق", Notes: "مناسب للخبز والتكثيف"},
	}}},
	{"سكر", common.SubstitutionResult{OriginalIngredient: "سكر أبيض", Substitutes: []common.Substitute{
		{Name: "عسل", Ratio: "3/4 كوب عسل لكل كوب سكر", Notes: "قلل السوائل الأخرى بمقدار 1/4 كوب لكل كوب عسل"},
		{Name: "سكر جوز الهند", Ratio: "1:1"},
		{Name: "شراب القيقب", Ratio: "3/4 كوب شراب لكل كوب سكر", Notes: "قلل السوائل الأخرى قليلاً"},
	}}},
	{"زبدة", common.SubstitutionResult{OriginalIngredient: "زبدة", Substitutes: []common.Substitute{
		{Name: "زيت جوز الهند", Ratio: "1:1", Notes: "جيد للخبز، يعمل بشكل أفضل عند درجة حرارة الغرفة"},
		{Name: "زيت الزيتون", Ratio: "3/4 كوب زيت لكل كوب زبدة", Notes: "أفضل للوصفات المالحة"},
		{Name: "صلصة التفاح", Ratio: "1/2 كوب صلصة تفاح لكل كوب زبدة", Notes: "لتقليل الدهون في المخبوزات"},
	}}},
	{"بيض", common.SubstitutionResult{OriginalIngredient: "بيض", Substitutes: []common.Substitute{
		{Name: "بذور الكتان المطحونة + ماء", Ratio: "1 ملعقة كبيرة بذور كتان + 3 ملاعق ماء = بيضة واحدة", Notes: "اتركها لمدة 5 دقائق حتى تتكاثف"},
		{Name: "موز مهروس", Ratio: "1/4 كوب موز مهروس = بيضة واحدة", Notes: "مناسب للمخبوزات الحلوة"},
		{Name: "الزبادي", Ratio: "1/4 كوب زبادي = بيضة واحدة"},
	}}},
	{"حليب", common.SubstitutionResult{OriginalIngredient: "حليب", Substitutes: []common.Substitute{
		{Name: "حليب اللوز", Ratio: "1:1"},
		{Name: "حليب جوز الهند", Ratio: "1:1", Notes: "يضيف نكهة جوز الهند"},
		{Name: "حليب الصويا", Ratio: "1:1", Notes: "بديل نباتي شائع"},
	}}},
	{"زيت زيتون", common.SubstitutionResult{OriginalIngredient: "زيت زيتون", Substitutes: []common.Substitute{
		{Name: "زيت الكانولا", Ratio: "1:1", Notes: "نكهة أخف"},
		{Name: "زيت الأفوكادو", Ratio: "1:1", Notes: "خيار صحي مع نقطة دخان عالية"},
		{Name: "زيت جوز الهند", Ratio: "1:1", Notes: "يضيف نكهة جوز الهند"},
	}}},
	{"خل", common.SubstitutionResult{OriginalIngredient: "خل أبيض", Substitutes: []common.Substitute{
		{Name: "عصير ليمون", Ratio: "1:1", Notes: "يعطي حموضة مشابهة مع نكهة حمضية"},
		{Name: "خل التفاح", Ratio: "1:1", Notes: "نكهة أقوى قليلاً"},
		{Name: "خل النبيذ الأبيض", Ratio: "1:1", Notes: "نكهة أكثر دقة"},
	}}},
	{"ملح", common.SubstitutionResult{OriginalIngredient: "ملح طعام", Substitutes: []common.Substitute{
		{Name: "ملح البحر", Ratio: "1:1"},
		{Name: "صلصة الصويا منخفضة الصوديوم", Ratio: "استخدم بحذر حسب الذوق", Notes: "يضيف نكهة أومامي"},
		{Name: "أعشاب طازجة", Ratio: "استخدم حسب الذوق", Notes: "لإضافة نكهة بدون ملح"},
	}}},
	{"بصل", common.SubstitutionResult{OriginalIngredient: "بصل", Substitutes: []common.Substitute{
		{Name: "كراث", Ratio: "1:1", Notes: "نكهة أخف"},
		{Name: "بصل أخضر", Ratio: "1:1", Notes: "نكهة أكثر تميزاً"},
		{Name: "مسحوق البصل", Ratio: "1 ملعقة صغيرة لكل 1/2 كوب بصل طازج"},
	}}},
	{"ثوم", common.SubstitutionResult{OriginalIngredient: "ثوم", Substitutes: []common.Substitute{
		{Name: "مسحوق الثوم", Ratio: "1/8 ملعقة صغيرة لكل فص ثوم"},
		{Name: "الثوم المعمر", Ratio: "1 ملعقة كبيرة لكل فص ثوم", Notes: "نكهة أخف"},
		{Name: "الكراث", Ratio: "1/2 كوب كراث لكل فص ثوم", Notes: "نكهة مختلفة لكن مقبولة"},
	}}},
	{"طماطم", common.SubstitutionResult{OriginalIngredient: "طماطم طازجة", Substitutes: []common.Substitute{
		{Name: "معجون طماطم + ماء", Ratio: "2-3 ملاعق كبيرة معجون + 1/4 كوب ماء = كوب طماطم"},
		{Name: "طماطم معلبة", Ratio: "1:1"},
		{Name: "صلصة طماطم", Ratio: "1/2 كوب صلصة لكل كوب طماطم", Notes: "قد تحتاج لتعديل التوابل"},
	}}},
	{"ليمون", common.SubstitutionResult{OriginalIngredient: "عصير ليمون", Substitutes: []common.Substitute{
		{Name: "خل أبيض", Ratio: "1/2 الكمية من الخل لكل كمية من الليمون"},
		{Name: "عصير ليمون معبأ", Ratio: "1:1", Notes: "لكن النكهة قد تكون أقل حدة"},
		{Name: "خل التفاح", Ratio: "1/2 الكمية من الخل لكل كمية من الليمون"},
	}}},
}

// SubstitutionTable 替代食材查詢
type SubstitutionTable struct {
	entries []substitutionEntry
}

// NewSubstitutionTable 載入內建替代表
func NewSubstitutionTable() *SubstitutionTable {
	return &SubstitutionTable{entries: substitutionTable}
}

// Substitute 回傳第一個與輸入互為子字串的條目，找不到時回傳提示訊息
func (t *SubstitutionTable) Substitute(ingredient string) common.SubstitutionResult {
	normalized := common.NormalizeIngredient(ingredient)

	for _, e := range t.entries {
		if substringMatch(strings.ToLower(e.key), normalized) {
			return e.result.Clone()
		}
	}

	return common.SubstitutionResult{
		OriginalIngredient: ingredient,
		Substitutes: []common.Substitute{
			{Name: noSubstituteName, Ratio: noSubstituteRatio},
		},
	}
}
