package dataset

// countries lists every country in load order with its region and its
// sub-metric scores, aligned with Subfactors.
var countries = []country{
	{"Israel", "Israel", []float64{69, 73, 55, 62, 60, 52, 71, 60, 68, 72, 55, 35, 18, 48}},
	{"Sweden", "Nordics", []float64{86, 94, 89, 68, 72, 82, 82, 72, 78, 82, 88, 48, 50, 62}},
	{"Denmark", "Nordics", []float64{87, 95, 93, 70, 78, 80, 85, 73, 72, 80, 85, 40, 52, 68}},
	{"Norway", "Nordics", []float64{86, 97, 95, 76, 82, 85, 82, 71, 65, 85, 82, 32, 48, 65}},
	{"Finland", "Nordics", []float64{88, 96, 94, 63, 68, 78, 80, 78, 68, 78, 86, 52, 58, 60}},
	{"Germany", "Western Europe", []float64{84, 86, 82, 72, 74, 65, 79, 72, 72, 62, 68, 55, 52, 72}},
	{"Netherlands", "Western Europe", []float64{86, 91, 84, 71, 78, 72, 76, 74, 80, 68, 78, 48, 42, 68}},
	{"UK", "Western Europe", []float64{82, 85, 72, 66, 66, 68, 84, 73, 88, 70, 72, 45, 35, 62}},
	{"France", "Western Europe", []float64{79, 80, 73, 64, 66, 74, 76, 68, 65, 72, 65, 50, 45, 60}},
	{"Switzerland", "Western Europe", []float64{89, 90, 85, 90, 92, 62, 76, 76, 90, 72, 78, 20, 30, 75}},
	{"USA", "North America", []float64{80, 79, 65, 88, 85, 64, 84, 66, 82, 68, 62, 45, 48, 78}},
	{"Canada", "North America", []float64{83, 89, 78, 70, 70, 72, 79, 76, 75, 72, 70, 50, 38, 65}},
	{"Japan", "Asia-Pacific", []float64{82, 83, 68, 65, 62, 45, 75, 83, 62, 55, 58, 58, 55, 55}},
	{"South Korea", "Asia-Pacific", []float64{78, 82, 70, 58, 65, 38, 84, 82, 65, 65, 60, 55, 30, 60}},
	{"Australia", "Asia-Pacific", []float64{83, 89, 74, 75, 74, 70, 81, 73, 82, 70, 72, 42, 32, 68}},
	{"New Zealand", "Asia-Pacific", []float64{87, 95, 82, 62, 62, 76, 86, 70, 72, 75, 74, 45, 30, 58}},
	{"Singapore", "Asia-Pacific", []float64{72, 60, 42, 82, 95, 60, 86, 88, 85, 62, 70, 30, 25, 70}},
	{"Uruguay", "South America", []float64{76, 85, 80, 35, 38, 58, 61, 45, 30, 65, 35, 65, 62, 42}},
	{"Chile", "South America", []float64{77, 82, 72, 32, 40, 55, 72, 48, 35, 68, 38, 70, 60, 45}},
	{"Austria", "Western Europe", []float64{83, 84, 75, 72, 76, 62, 78, 72, 68, 70, 75, 48, 38, 70}},
	{"Belgium", "Western Europe", []float64{81, 76, 80, 70, 72, 78, 75, 72, 72, 78, 68, 50, 42, 65}},
	{"Ireland", "Western Europe", []float64{84, 91, 82, 78, 95, 72, 80, 76, 75, 52, 68, 38, 28, 72}},
	{"Luxembourg", "Western Europe", []float64{85, 83, 82, 88, 100, 76, 69, 68, 45, 55, 65, 32, 25, 78}},
	{"Italy", "Southern Europe", []float64{74, 76, 62, 58, 60, 78, 73, 68, 62, 58, 48, 48, 42, 55}},
	{"Spain", "Southern Europe", []float64{77, 79, 72, 55, 58, 72, 77, 68, 55, 60, 52, 55, 40, 55}},
	{"Portugal", "Southern Europe", []float64{80, 80, 85, 48, 52, 75, 77, 70, 52, 65, 48, 58, 38, 48}},
	{"Greece", "Southern Europe", []float64{73, 73, 55, 42, 48, 60, 68, 60, 48, 55, 38, 60, 50, 48}},
	{"Cyprus", "Southern Europe", []float64{77, 72, 65, 50, 58, 60, 74, 55, 40, 72, 45, 55, 45, 52}},
	{"Malta", "Southern Europe", []float64{78, 75, 55, 52, 62, 68, 66, 60, 35, 72, 48, 52, 35, 55}},
	{"Croatia", "Southern Europe", []float64{72, 63, 60, 35, 45, 70, 73, 64, 38, 60, 38, 65, 52, 45}},
	{"Slovenia", "Central Europe", []float64{78, 76, 70, 52, 55, 72, 76, 72, 48, 72, 62, 55, 45, 55}},
	{"Czech Republic", "Central Europe", []float64{80, 77, 68, 48, 58, 58, 76, 72, 52, 60, 55, 62, 40, 55}},
	{"Poland", "Central Europe", []float64{72, 67, 58, 42, 50, 72, 76, 74, 48, 65, 42, 68, 52, 50}},
	{"Hungary", "Central Europe", []float64{68, 56, 42, 38, 48, 62, 73, 65, 48, 60, 42, 68, 55, 48}},
	{"Slovakia", "Central Europe", []float64{75, 69, 62, 42, 48, 62, 75, 64, 35, 58, 40, 65, 52, 48}},
	{"Romania", "Central Europe", []float64{73, 63, 55, 32, 42, 76, 73, 55, 38, 48, 28, 75, 62, 42}},
	{"Bulgaria", "Central Europe", []float64{72, 65, 40, 28, 38, 72, 72, 55, 35, 55, 32, 78, 62, 42}},
	{"Estonia", "Central Europe", []float64{83, 78, 78, 48, 55, 52, 80, 82, 55, 72, 65, 60, 48, 52}},
	{"Latvia", "Central Europe", []float64{78, 72, 70, 40, 48, 68, 80, 68, 42, 68, 48, 65, 55, 48}},
	{"Lithuania", "Central Europe", []float64{78, 73, 72, 42, 52, 65, 81, 68, 42, 60, 48, 62, 52, 50}},
	{"Iceland", "Nordics", []float64{87, 94, 92, 72, 75, 88, 79, 65, 50, 82, 78, 30, 35, 68}},
	{"Serbia", "Balkans & Eastern", []float64{65, 55, 48, 25, 32, 60, 73, 58, 35, 55, 30, 75, 60, 35}},
	{"Montenegro", "Balkans & Eastern", []float64{65, 52, 50, 25, 30, 58, 72, 52, 25, 55, 25, 72, 58, 32}},
	{"North Macedonia", "Balkans & Eastern", []float64{68, 56, 52, 22, 28, 58, 80, 48, 22, 48, 22, 78, 65, 30}},
	{"Albania", "Balkans & Eastern", []float64{65, 52, 48, 20, 25, 55, 67, 45, 20, 48, 20, 80, 68, 28}},
	{"Bosnia and Herzegovina", "Balkans & Eastern", []float64{60, 45, 50, 22, 25, 55, 64, 48, 22, 45, 22, 78, 65, 28}},
	{"Moldova", "Balkans & Eastern", []float64{62, 53, 52, 15, 20, 58, 74, 50, 20, 55, 25, 85, 70, 22}},
	{"Ukraine", "Balkans & Eastern", []float64{58, 56, 45, 15, 22, 62, 70, 58, 42, 62, 35, 88, 72, 20}},
	{"Turkey", "Balkans & Eastern", []float64{55, 44, 35, 35, 42, 48, 73, 58, 45, 55, 30, 72, 55, 38}},
}
