package seeds

// noScore marks a goal the dataset has no rating for.
const noScore = -1

type dish struct {
	name   string
	flavor string
	// calories, protein, fat, carbohydrates, fiber, sugars, saturated fat,
	// cholesterol, sodium, iron, zinc, calcium, vitamin B12, A, B, C, D, E
	nutrients [18]float64
	// weight management, muscle development, energy boost, heart health,
	// immunity strength
	goals [5]float64
}

// Values per 100g serving.
var dishes = []dish{
	{"Ayam Bakar", "savory, sweet, smoky",
		[18]float64{190, 25.1, 8.4, 3.2, 0.3, 2.1, 2.4, 0.09, 420, 1.1, 1.9, 14, 0.3, 18, 0.5, 1.2, 0.1, 0.4},
		[5]float64{7.5, 8.8, 6.2, 6.0, 5.8}},
	{"Ayam Goreng", "savory, crispy",
		[18]float64{260, 23.4, 16.2, 5.1, 0.2, 0.4, 4.3, 0.10, 510, 1.0, 1.8, 16, 0.3, 20, 0.4, 0.5, 0.1, 1.1},
		[5]float64{4.2, 8.4, 7.1, 3.9, 5.1}},
	{"Ayam Semur", "sweet, savory",
		[18]float64{210, 19.8, 10.5, 9.4, 0.6, 6.3, 3.0, 0.08, 640, 1.4, 1.6, 22, 0.2, 35, 0.4, 2.0, 0.1, 0.6},
		[5]float64{5.4, 7.6, 6.8, 5.0, 5.6}},
	{"Bakso Ayam", "savory, umami",
		[18]float64{150, 11.2, 7.1, 10.3, 0.4, 0.8, 2.2, 0.04, 780, 1.2, 1.1, 20, 0.4, 10, 0.3, 1.0, 0.0, 0.3},
		[5]float64{6.1, 6.4, 5.9, 4.8, 5.2}},
	{"Bubur Ayam", "mild, savory",
		[18]float64{95, 5.6, 2.4, 13.2, 0.5, 0.3, 0.7, 0.02, 350, 0.6, 0.5, 12, 0.1, 15, 0.2, 1.5, 0.0, 0.2},
		[5]float64{7.8, 4.5, 6.5, 7.0, 6.4}},
	{"Cumi Goreng", "savory, crispy",
		[18]float64{230, 15.3, 13.0, 12.6, 0.3, 0.5, 2.6, 0.22, 560, 0.9, 1.5, 35, 1.2, 12, 0.4, 4.0, 0.0, 1.4},
		[5]float64{4.0, 7.2, 6.6, 3.2, 5.5}},
	{"Gado Gado", "nutty, sweet, savory",
		[18]float64{135, 6.1, 7.8, 11.0, 3.4, 4.2, 1.3, 0.01, 290, 1.8, 0.9, 65, 0.0, 190, 0.3, 18.0, 0.0, 2.6},
		[5]float64{8.6, 5.0, 6.1, 8.4, 8.1}},
	{"Gulai Ikan", "spicy, rich, coconut",
		[18]float64{170, 14.8, 11.2, 3.9, 0.9, 1.1, 7.6, 0.05, 480, 1.0, 0.8, 40, 1.8, 60, 0.3, 5.0, 2.4, 1.2},
		[5]float64{5.5, 7.4, 6.0, 5.2, 6.6}},
	{"Ikan Bakar", "smoky, savory",
		[18]float64{160, 22.5, 6.5, 2.0, 0.2, 1.5, 1.4, 0.06, 380, 0.8, 0.9, 30, 2.5, 25, 0.4, 2.0, 4.1, 0.9},
		[5]float64{8.4, 8.6, 6.0, 8.3, 7.0}},
	{"Martabak Telur", "savory, crispy",
		[18]float64{290, 10.6, 18.3, 21.7, 1.0, 1.2, 5.1, 0.21, 520, 1.6, 1.0, 42, 0.6, 95, 0.3, 2.5, 0.9, 1.5},
		[5]float64{2.8, 5.9, 7.6, 2.9, 4.6}},
	{"Mie Goreng", "sweet, savory",
		[18]float64{220, 6.9, 9.2, 28.4, 1.6, 3.5, 1.8, 0.03, 690, 1.3, 0.6, 25, 0.1, 40, 0.3, 3.0, 0.0, 1.0},
		[5]float64{3.1, 3.9, 8.2, 3.3, 4.2}},
	{"Nasi Goreng", "savory, sweet, smoky",
		[18]float64{168, 6.3, 6.2, 21.1, 0.9, 1.8, 1.3, 0.05, 590, 1.0, 0.7, 18, 0.2, 42, 0.3, 2.5, 0.2, 0.8},
		[5]float64{4.4, 4.8, 8.0, 4.1, 4.8}},
	{"Nasi Uduk", "rich, coconut",
		[18]float64{180, 3.5, 5.9, 28.7, 0.6, 0.3, 4.6, 0.00, 210, 0.5, 0.6, 10, 0.0, 0, 0.2, 0.0, 0.0, 0.2},
		[5]float64{3.5, 3.2, 8.4, 3.8, noScore}},
	{"Opor Ayam", "mild, coconut",
		[18]float64{200, 15.7, 13.8, 4.0, 0.5, 1.4, 8.9, 0.07, 450, 1.2, 1.3, 26, 0.3, 30, 0.3, 1.5, 0.1, 0.7},
		[5]float64{4.6, 7.5, 6.5, 4.0, 5.7}},
	{"Rawon", "savory, earthy",
		[18]float64{125, 10.4, 7.3, 4.8, 1.1, 0.7, 2.6, 0.04, 520, 2.5, 2.4, 20, 1.0, 45, 0.3, 3.5, 0.0, 0.6},
		[5]float64{6.8, 7.0, 6.3, 5.8, 6.9}},
	{"Rendang", "spicy, rich",
		[18]float64{195, 17.5, 12.3, 4.8, 1.2, 1.9, 6.8, 0.07, 480, 2.7, 4.1, 20, 1.5, 35, 0.4, 2.5, 0.1, 0.8},
		[5]float64{4.8, 8.3, 7.0, 4.3, 6.3}},
	{"Sate Ayam", "sweet, smoky, nutty",
		[18]float64{225, 24.4, 11.6, 6.5, 1.0, 4.6, 2.9, 0.08, 470, 1.3, 1.7, 18, 0.3, 16, 0.5, 1.0, 0.1, 1.6},
		[5]float64{6.0, 8.9, 7.2, 5.1, 5.9}},
	{"Sop Buntut", "savory, clear broth",
		[18]float64{140, 12.3, 8.9, 3.1, 0.8, 1.0, 3.6, 0.06, 430, 1.8, 3.2, 22, 1.9, 160, 0.3, 6.0, 0.0, 0.5},
		[5]float64{6.2, 7.1, 5.6, 5.0, 7.5}},
	{"Soto Ayam", "savory, turmeric",
		[18]float64{110, 9.1, 5.3, 6.2, 0.7, 0.9, 1.5, 0.04, 480, 1.0, 0.8, 24, 0.2, 55, 0.3, 5.5, 0.0, 0.6},
		[5]float64{7.9, 6.3, 6.0, 7.1, 7.4}},
	{"Telur Dadar", "savory",
		[18]float64{196, 13.2, 15.0, 1.1, 0.0, 0.9, 4.3, 0.35, 310, 1.7, 1.2, 55, 1.0, 160, 0.5, 0.0, 1.8, 1.3},
		[5]float64{5.9, 7.3, 6.4, 4.4, 6.1}},
	{"Telur Rebus", "mild",
		[18]float64{155, 12.6, 10.6, 1.1, 0.0, 1.1, 3.3, 0.37, 124, 1.2, 1.1, 50, 1.1, 149, 0.5, 0.0, 2.0, 1.0},
		[5]float64{8.0, 7.9, 6.2, 5.6, 6.7}},
	{"Pecel Lele", "spicy, savory",
		[18]float64{245, 17.0, 16.4, 7.5, 0.9, 1.6, 3.5, 0.07, 560, 0.9, 0.8, 30, 2.2, 20, 0.3, 6.0, 3.0, 1.9},
		[5]float64{4.1, 7.7, 6.9, noScore, 5.0}},
	{"Tempe Goreng", "savory, nutty",
		[18]float64{225, 18.5, 14.2, 9.4, 4.8, 0.5, 2.4, 0.00, 95, 2.7, 1.6, 111, 0.1, 0, 0.2, 0.0, 0.0, 0.8},
		[5]float64{6.3, 8.1, 7.4, 7.6, 6.8}},
	{"Tahu Bacem", "sweet",
		[18]float64{150, 10.0, 7.8, 11.2, 1.2, 7.5, 1.1, 0.00, 260, 2.0, 1.0, 180, 0.0, 0, 0.1, 0.0, 0.0, 0.4},
		[5]float64{7.0, 6.5, 6.0, 7.7, 6.0}},
	{"Sayur Asem", "sour, fresh",
		[18]float64{45, 1.6, 0.5, 9.1, 2.6, 3.1, 0.1, 0.00, 260, 0.7, 0.3, 35, 0.0, 110, 0.1, 22.0, 0.0, 0.6},
		[5]float64{9.4, 2.8, 4.6, 8.8, 8.7}},
	{"Capcay", "savory, light",
		[18]float64{75, 4.2, 3.6, 7.3, 2.1, 2.6, 0.6, 0.01, 380, 0.8, 0.4, 40, 0.1, 320, 0.2, 28.0, 0.0, 1.1},
		[5]float64{9.0, 4.0, 4.9, 8.5, 9.0}},
	{"Pepes Ikan", "herbal, spicy",
		[18]float64{130, 18.9, 5.0, 2.7, 0.8, 0.6, 1.6, 0.05, 330, 1.1, 0.7, 45, 2.0, 70, 0.3, 7.0, 3.2, 1.0},
		[5]float64{8.8, 8.2, 5.8, 8.6, noScore}},
	{"Nasi Kuning", "fragrant, coconut",
		[18]float64{190, 3.8, 6.4, 29.3, 0.8, 0.4, 4.9, 0.00, 240, 0.6, 0.6, 12, 0.0, 0, 0.2, 0.0, 0.0, 0.3},
		[5]float64{3.3, 3.0, 8.6, 3.6, 4.0}},
	{"Es Cendol", "sweet, coconut",
		[18]float64{160, 1.1, 5.2, 28.1, 0.4, 22.0, 4.4, 0.00, 35, 0.3, 0.1, 20, 0.0, 0, 0.0, 0.0, 0.0, 0.1},
		[5]float64{noScore, 1.2, 7.5, 2.0, 2.5}},
}
