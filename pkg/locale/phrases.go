package locale

import "krishi/entities"

// Phrases is the static phrase dictionary, keyed by the canonical English
// phrase. It backfills translations for the fixed set of agronomic phrases
// the heuristic generator uses, so heuristic plans localize without carrying
// their own translation maps. Loaded once; never mutated.
var Phrases = map[string]entities.LocalizedText{
	// Plan titles and overviews.
	"Rice cultivation plan": {
		"en": "Rice cultivation plan",
		"bn": "ধান চাষের পরিকল্পনা",
	},
	"Wheat cultivation plan": {
		"en": "Wheat cultivation plan",
		"bn": "গম চাষের পরিকল্পনা",
	},
	"Crop cultivation plan": {
		"en": "Crop cultivation plan",
		"bn": "ফসল চাষের পরিকল্পনা",
	},
	"A season-long schedule of watering, fertilization and field care from planting to harvest.": {
		"en": "A season-long schedule of watering, fertilization and field care from planting to harvest.",
		"bn": "রোপণ থেকে ফসল কাটা পর্যন্ত সেচ, সার ও জমি পরিচর্যার মৌসুমব্যাপী সময়সূচি।",
	},

	// Watering.
	"Keep 2-3 cm standing water in the field": {
		"en": "Keep 2-3 cm standing water in the field",
		"bn": "জমিতে ২-৩ সেমি দাঁড়ানো পানি বজায় রাখুন",
	},
	"Alternate wetting and drying irrigation": {
		"en": "Alternate wetting and drying irrigation",
		"bn": "পর্যায়ক্রমে ভেজানো ও শুকানো পদ্ধতিতে সেচ দিন",
	},
	"Irrigate the field": {
		"en": "Irrigate the field",
		"bn": "জমিতে সেচ দিন",
	},
	"Light irrigation to keep the soil moist": {
		"en": "Light irrigation to keep the soil moist",
		"bn": "মাটি ভেজা রাখতে হালকা সেচ দিন",
	},
	"First irrigation at crown root initiation stage": {
		"en": "First irrigation at crown root initiation stage",
		"bn": "মুকুট শিকড় গজানোর পর্যায়ে প্রথম সেচ দিন",
	},
	"Stop irrigation before harvest": {
		"en": "Stop irrigation before harvest",
		"bn": "ফসল কাটার আগে সেচ বন্ধ করুন",
	},
	"Apply about 50 mm of water": {
		"en": "Apply about 50 mm of water",
		"bn": "প্রায় 50 mm পানি প্রয়োগ করুন",
	},
	"Drain the field and let it dry": {
		"en": "Drain the field and let it dry",
		"bn": "জমির পানি নিষ্কাশন করে শুকাতে দিন",
	},

	// Fertilizer.
	"Basal fertilization (FYM/compost + recommended NPK) and zinc if needed": {
		"en": "Basal fertilization (FYM/compost + recommended NPK) and zinc if needed",
		"bn": "মৌল সার প্রয়োগ (গোবর/কম্পোস্ট + সুপারিশকৃত এনপিকে) এবং প্রয়োজনে জিংক",
	},
	"Top dress urea and irrigate afterwards": {
		"en": "Top dress urea and irrigate afterwards",
		"bn": "ইউরিয়া উপরি প্রয়োগ করুন এবং পরে সেচ দিন",
	},
	"Split application of nitrogen fertilizer": {
		"en": "Split application of nitrogen fertilizer",
		"bn": "নাইট্রোজেন সার ভাগ করে প্রয়োগ করুন",
	},

	// Pest and disease.
	"Scout for pests and natural enemies": {
		"en": "Scout for pests and natural enemies",
		"bn": "পোকামাকড় ও উপকারী পোকা পর্যবেক্ষণ করুন",
	},
	"Check leaves for disease symptoms": {
		"en": "Check leaves for disease symptoms",
		"bn": "পাতায় রোগের লক্ষণ আছে কি না পরীক্ষা করুন",
	},
	"Apply pest control only if threshold is crossed": {
		"en": "Apply pest control only if threshold is crossed",
		"bn": "ক্ষতির মাত্রা ছাড়ালে তবেই বালাইনাশক প্রয়োগ করুন",
	},

	// Field care.
	"Remove weeds from the field": {
		"en": "Remove weeds from the field",
		"bn": "জমি থেকে আগাছা পরিষ্কার করুন",
	},
	"Check field drainage after heavy rain": {
		"en": "Check field drainage after heavy rain",
		"bn": "ভারী বৃষ্টির পরে জমির নিষ্কাশন পরীক্ষা করুন",
	},

	// Harvest.
	"Harvest when 80-85% of grains are golden": {
		"en": "Harvest when 80-85% of grains are golden",
		"bn": "৮০-৮৫% শস্যদানা সোনালি হলে ফসল কাটুন",
	},
	"Harvest the crop": {
		"en": "Harvest the crop",
		"bn": "ফসল সংগ্রহ করুন",
	},
}
