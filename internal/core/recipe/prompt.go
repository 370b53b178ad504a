package recipe

import (
	"fmt"

	"recipe-finder/internal/pkg/common"
)

// BuildRecipePrompt 以埃及方言組成食譜 prompt，要求模型只回傳 JSON
func BuildRecipePrompt(ingredients []string) string {
	return fmt.Sprintf(`عايزك تقترح ليا وصفات أكل باستخدام المكونات دي: %s.

عايز النتائج بالعربي المصري (باللهجة المصرية العامية)، وعايزك تديني وصفتين مختلفين بالصيغة دي:

الأول، اقترح قائمة بـ 5 مكونات إضافية ممكن أضيفها عشان أوسّع خياراتي.

وبعدين لكل وصفة:
1. اسم الوصفة بلهجة مصرية مرحة
2. وصف قصير للوصفة (1-2 جملة)
3. قائمة المكونات (مع الكميات)
4. خطوات التحضير مقسمة على بنود واضحة وباللهجة المصرية المرحة

استخدم مصطلحات مصرية زي: حطّي، سيبيه، هنولّع النار، هنرمي المكونات، ولمّا يستوي، هنتّبل، وهكذا.

لو المكونات مش كفاية لعمل وصفة، رجّع مصفوفة recipes فاضية واقترح مكونات إضافية بس.

عايز الرد منك بصيغة JSON بس بدون أي كلام زيادة، زي ده:

{
  "recipes": [
    {
      "title": "عنوان الوصفة الأولى",
      "description": "وصف موجز للوصفة الأولى",
      "ingredients": ["المكون 1 مع الكمية", "المكون 2 مع الكمية"],
      "instructions": ["الخطوة 1", "الخطوة 2", "الخطوة 3"]
    },
    {
      "title": "عنوان الوصفة الثانية",
      "description": "وصف موجز للوصفة الثانية",
      "ingredients": ["المكون 1 مع الكمية", "المكون 2 مع الكمية"],
      "instructions": ["الخطوة 1", "الخطوة 2", "الخطوة 3"]
    }
  ],
  "suggestedIngredients": ["مكون إضافي 1", "مكون إضافي 2", "مكون إضافي 3", "مكون إضافي 4", "مكون إضافي 5"]
}`, common.FormatIngredients(ingredients))
}
