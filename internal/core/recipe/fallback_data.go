package recipe

import "recipe-finder/internal/pkg/common"

// defaultFallbackSuggestions 找不到任何對應時的建議食材
var defaultFallbackSuggestions = []string{
	"طماطم", "بصل", "ثوم", "بطاطس", "جزر",
	"دجاج", "لحم", "بيض", "أرز", "معكرونة",
}

// fallbackTable 靜態備援食譜，鍵為排序後以逗號串接的食材
// 順序即比對順序
var fallbackTable = []struct {
	key    string
	result common.RecipeResult
}{
	{
		key: "بصل,ثوم,طماطم",
		result: common.RecipeResult{
			Recipes: []common.Recipe{
				{
					Title:       "صلصة طماطم مع البصل والثوم",
					Description: "صلصة طماطم بسيطة وسريعة يمكن استخدامها مع المعكرونة أو الأرز",
					Ingredients: []string{"3 حبات طماطم", "1 بصلة متوسطة", "2 فص ثوم", "ملح وفلفل حسب الرغبة", "زيت زيتون"},
					Instructions: []string{
						"قطع البصل والثوم إلى قطع صغيرة",
						"سخن زيت الزيتون في مقلاة على نار متوسطة",
						"أضف البصل والثوم وقلبهم حتى يصبح لونهم ذهبياً",
						"قطع الطماطم وأضفها إلى المقلاة",
						"أضف الملح والفلفل واتركها على نار هادئة لمدة 15 دقيقة",
					},
				},
			},
			SuggestedIngredients: []string{"فلفل أخضر", "زيتون", "معكرونة", "جبنة", "أعشاب (ريحان أو بقدونس)"},
		},
	},
	{
		key: "بيض",
		result: common.RecipeResult{
			Recipes: []common.Recipe{
				{
					Title:       "بيض مقلي",
					Description: "وجبة سريعة من البيض المقلي",
					Ingredients: []string{"2 بيضة", "ملح وفلفل حسب الرغبة", "زيت للقلي"},
					Instructions: []string{
						"سخن الزيت في مقلاة على نار متوسطة",
						"اكسر البيض في المقلاة",
						"رش الملح والفلفل",
						"اطهي البيض حتى ينضج حسب الرغبة",
					},
				},
				{
					Title:       "عجة البيض",
					Description: "عجة بيض شهية ولذيذة",
					Ingredients: []string{"3 بيضات", "1/4 كوب حليب", "ملح وفلفل حسب الرغبة", "زيت للقلي"},
					Instructions: []string{
						"اخفق البيض مع الحليب والملح والفلفل في وعاء",
						"سخن الزيت في مقلاة على نار متوسطة",
						"صب خليط البيض في المقلاة",
						"اطهي البيض مع التقليب حتى ينضج",
					},
				},
			},
			SuggestedIngredients: []string{"جبنة", "خبز", "طماطم", "بصل", "فلفل أخضر"},
		},
	},
	{
		key: "دجاج",
		result: common.RecipeResult{
			Recipes: []common.Recipe{
				{
					Title:       "دجاج مشوي بالأعشاب",
					Description: "دجاج مشوي طري ولذيذ بالأعشاب",
					Ingredients: []string{"4 قطع دجاج", "2 ملعقة زيت زيتون", "ملح وفلفل", "1 ملعقة ثوم مفروم", "أعشاب (زعتر، إكليل الجبل)"},
					Instructions: []string{
						"اخلط الزيت مع الثوم والأعشاب والملح والفلفل",
						"تبل قطع الدجاج بالخليط وضعها في صينية",
						"اتركها في الثلاجة لمدة ساعة على الأقل",
						"اشوي الدجاج في الفرن على حرارة 180 درجة لمدة 40-45 دقيقة",
					},
				},
				{
					Title:       "كاري الدجاج",
					Description: "طبق هندي لذيذ ومتبل من الدجاج",
					Ingredients: []string{"500 جرام دجاج مقطع", "بصلة مفرومة", "2 فص ثوم", "2 ملعقة معجون طماطم", "ملعقة بهارات كاري", "ملح", "زيت"},
					Instructions: []string{
						"سخن الزيت وأضف البصل والثوم وقلبهم حتى يذبلوا",
						"أضف بهارات الكاري وقلب لمدة دقيقة",
						"أضف الدجاج وقلبه حتى يتغير لونه",
						"أضف معجون الطماطم والملح وكوب من الماء",
						"غطِ المقلاة واطهي على نار هادئة لمدة 20-25 دقيقة",
					},
				},
			},
			SuggestedIngredients: []string{"أرز", "بطاطس", "بصل", "ثوم", "ليمون"},
		},
	},
	{
		key: "أرز",
		result: common.RecipeResult{
			Recipes: []common.Recipe{
				{
					Title:       "أرز بالخضار",
					Description: "طبق أرز بسيط مع الخضروات المشكلة",
					Ingredients: []string{"2 كوب أرز", "1 جزر مقطع", "1 فلفل أخضر مقطع", "1 بصلة مفرومة", "2 ملعقة زيت", "ملح وبهارات"},
					Instructions: []string{
						"اغسل الأرز ودعه ينقع لمدة 15 دقيقة ثم صفّه",
						"سخن الزيت وأضف البصل وقلبه حتى يذبل",
						"أضف الجزر والفلفل وقلبهم لمدة 3-4 دقائق",
						"أضف الأرز وقلبه مع الخضار",
						"أضف 4 أكواب ماء والملح والبهارات",
						"اطهي على نار هادئة لمدة 20 دقيقة حتى ينضج الأرز",
					},
				},
			},
			SuggestedIngredients: []string{"دجاج", "لحم", "بازلاء", "ذرة", "زعفران"},
		},
	},
	{
		key: "بطاطس",
		result: common.RecipeResult{
			Recipes: []common.Recipe{
				{
					Title:       "بطاطس مقلية",
					Description: "بطاطس مقلية مقرمشة ولذيذة",
					Ingredients: []string{"4 حبات بطاطس كبيرة", "زيت للقلي", "ملح"},
					Instructions: []string{
						"قشر البطاطس وقطعها إلى شرائح طويلة",
						"اغسل البطاطس بالماء البارد وجففها جيداً",
						"سخن الزيت في مقلاة عميقة",
						"اقلي البطاطس حتى تصبح ذهبية ومقرمشة",
						"صفّها من الزيت ورش الملح عليها",
					},
				},
				{
					Title:       "بطاطس مهروسة",
					Description: "بطاطس مهروسة كريمية وطرية",
					Ingredients: []string{"5 حبات بطاطس متوسطة", "نصف كوب حليب", "2 ملعقة زبدة", "ملح وفلفل"},
					Instructions: []string{
						"قشر البطاطس وقطعها إلى مكعبات",
						"اسلق البطاطس في ماء مملح حتى تنضج",
						"صفّي البطاطس واهرسها",
						"سخن الحليب والزبدة واضفهما تدريجياً إلى البطاطس المهروسة",
						"أضف الملح والفلفل حسب الرغبة واخلط جيداً",
					},
				},
			},
			SuggestedIngredients: []string{"جبنة", "ثوم", "كريمة", "بقدونس", "زبدة"},
		},
	},
	{
		key: "بصل,طماطم",
		result: common.RecipeResult{
			Recipes: []common.Recipe{
				{
					Title:       "صلصة البصل والطماطم",
					Description: "صلصة بسيطة مثالية للسندويشات أو المعكرونة",
					Ingredients: []string{"3 حبات طماطم", "1 بصلة كبيرة", "2 ملعقة زيت زيتون", "ملح وفلفل أسود", "أعشاب حسب الرغبة"},
					Instructions: []string{
						"قطع البصل إلى شرائح رفيعة والطماطم إلى مكعبات",
						"سخن الزيت في مقلاة على نار متوسطة",
						"أضف البصل وقلبه حتى يصبح شفافاً",
						"أضف الطماطم والملح والفلفل والأعشاب",
						"اطهي على نار هادئة لمدة 10-15 دقيقة",
					},
				},
			},
			SuggestedIngredients: []string{"ثوم", "فلفل أخضر", "زيتون", "معكرونة", "دجاج"},
		},
	},
	{
		key: "بيض,جبنة",
		result: common.RecipeResult{
			Recipes: []common.Recipe{
				{
					Title:       "أومليت بالجبنة",
					Description: "أومليت شهي محشو بالجبنة",
					Ingredients: []string{"3 بيضات", "50 جرام جبنة مبشورة", "ملح وفلفل", "زيت أو زبدة للقلي"},
					Instructions: []string{
						"اخفق البيض في وعاء مع الملح والفلفل",
						"سخن الزيت في مقلاة على نار متوسطة",
						"صب خليط البيض في المقلاة واتركه لمدة دقيقة",
						"رش الجبنة على نصف الأومليت",
						"اطوِ النصف الآخر عليه واطهي لمدة دقيقة إضافية",
					},
				},
			},
			SuggestedIngredients: []string{"طماطم", "فطر", "بصل", "خبز", "فلفل أخضر"},
		},
	},
	{
		key: "أرز,دجاج",
		result: common.RecipeResult{
			Recipes: []common.Recipe{
				{
					Title:       "كبسة دجاج",
					Description: "طبق شهير من المطبخ العربي من الأرز والدجاج",
					Ingredients: []string{"دجاجة مقطعة", "2 كوب أرز", "2 بصل", "2 طماطم", "بهارات كبسة", "ملح", "زيت"},
					Instructions: []string{
						"انقع الأرز في ماء لمدة 30 دقيقة",
						"في قدر كبير، سخن الزيت وقلي قطع الدجاج حتى تصبح ذهبية من كل الجوانب",
						"أضف البصل المفروم وقلبه حتى يذبل",
						"أضف الطماطم المفرومة والبهارات والملح",
						"أضف 4 أكواب ماء ساخن واطهي الدجاج لمدة 20 دقيقة",
						"أخرج الدجاج وأضف الأرز المصفى إلى المرق",
						"غطِ القدر واطهي على نار هادئة لمدة 20 دقيقة",
						"ضع الدجاج فوق الأرز وقدمه ساخناً",
					},
				},
			},
			SuggestedIngredients: []string{"لوز", "زبيب", "بصل", "هيل", "قرفة"},
		},
	},
}
