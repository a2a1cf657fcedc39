package planner

import "math/rand"

// tipPairs are the motivational strings attached to freshly generated plans.
var tipPairs = []struct {
	En string
	Bn string
}{
	{"Small steps every day add up to big results.", "প্রতিদিনের ছোট পদক্ষেপই বড় ফলাফল আনে।"},
	{"Drink a glass of water before every meal.", "প্রতি খাবারের আগে এক গ্লাস পানি পান করুন।"},
	{"Consistency beats intensity - show up today.", "নিয়মিততাই আসল - আজও লেগে থাকুন।"},
	{"A 20 minute walk after dinner aids digestion.", "রাতের খাবারের পর ২০ মিনিট হাঁটা হজমে সাহায্য করে।"},
	{"Stretch before and after your workout.", "ব্যায়ামের আগে ও পরে স্ট্রেচিং করুন।"},
	{"Rest is part of training - sleep well tonight.", "বিশ্রামও অনুশীলনের অংশ - আজ রাতে ভালো ঘুমান।"},
}

// RandomTip draws one bilingual tip pair.
func RandomTip(rng *rand.Rand) (en, bn string) {
	pick := tipPairs[rng.Intn(len(tipPairs))]
	return pick.En, pick.Bn
}
