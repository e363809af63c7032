package catalog

// Default returns the embedded bright-star catalog used when no catalog
// file is supplied. Coordinates are J2000; radii are field-layout units,
// not parsecs. Every entry satisfies the same validation rules as loaded
// rows, so Default() and a round-trip through Load agree.
func Default() []Record {
	out := make([]Record, len(defaultRecords))
	copy(out, defaultRecords)
	return out
}

// defaultRecords lists bright stars, ordered roughly by magnitude.
// Data from the Yale Bright Star Catalog and IAU star names.
var defaultRecords = []Record{
	{"Sirius", 8.6, 101.287, -16.716, -1.46, 12},
	{"Canopus", 9.5, 95.988, -52.696, -0.74, 11},
	{"Arcturus", 9.2, 213.915, 19.182, -0.05, 10},
	{"Vega", 7.7, 279.235, 38.784, 0.03, 10},
	{"Capella", 9.3, 79.172, 45.998, 0.08, 10},
	{"Rigel", 9.9, 78.634, -8.202, 0.13, 10},
	{"Procyon", 8.4, 114.826, 5.225, 0.34, 9},
	{"Achernar", 9.8, 24.429, -57.237, 0.46, 9},
	{"Betelgeuse", 9.6, 88.793, 7.407, 0.50, 9},
	{"Hadar", 9.7, 210.956, -60.373, 0.61, 9},
	{"Altair", 8.1, 297.696, 8.868, 0.76, 8},
	{"Acrux", 9.4, 186.650, -63.099, 0.76, 8},
	{"Aldebaran", 9.0, 68.980, 16.509, 0.85, 8},
	{"Antares", 9.9, 247.352, -26.432, 0.96, 8},
	{"Spica", 9.5, 201.298, -11.161, 0.97, 8},
	{"Pollux", 8.8, 116.329, 28.026, 1.14, 7},
	{"Fomalhaut", 8.5, 344.413, -29.622, 1.16, 7},
	{"Deneb", 9.9, 310.358, 45.280, 1.25, 7},
	{"Mimosa", 9.6, 191.930, -59.689, 1.25, 7},
	{"Regulus", 9.1, 152.093, 11.967, 1.35, 7},
	{"Adhara", 9.3, 104.656, -28.972, 1.50, 6},
	{"Castor", 8.9, 113.650, 31.889, 1.58, 6},
	{"Gacrux", 9.0, 187.791, -57.113, 1.63, 6},
	{"Shaula", 9.4, 263.402, -37.104, 1.63, 6},
	{"Bellatrix", 9.2, 81.283, 6.350, 1.64, 6},
	{"Elnath", 8.7, 81.573, 28.608, 1.65, 6},
	{"Alnilam", 9.9, 84.053, -1.202, 1.69, 6},
	{"Alnitak", 9.8, 85.190, -1.943, 1.77, 6},
	{"Alioth", 8.6, 193.507, 55.960, 1.77, 6},
	{"Dubhe", 9.0, 165.932, 61.751, 1.79, 6},
	{"Mirfak", 9.3, 51.081, 49.861, 1.79, 6},
	{"Wezen", 9.9, 107.098, -26.393, 1.84, 5},
	{"Alkaid", 8.8, 206.885, 49.313, 1.86, 5},
	{"Atria", 9.5, 252.166, -69.028, 1.92, 5},
	{"Alhena", 9.0, 99.428, 16.399, 1.93, 5},
	{"Polaris", 9.7, 37.954, 89.264, 2.02, 5},
	{"Alphard", 9.1, 141.897, -8.659, 2.00, 5},
	{"Hamal", 8.9, 31.793, 23.463, 2.00, 5},
	{"Diphda", 9.0, 10.897, -17.987, 2.02, 5},
	{"Nunki", 9.2, 283.816, -26.297, 2.02, 5},
	{"Mizar", 8.6, 200.981, 54.925, 2.04, 5},
	{"Alpheratz", 8.8, 2.097, 29.091, 2.06, 5},
	{"Rasalhague", 8.9, 263.734, 12.560, 2.08, 5},
	{"Algol", 9.1, 47.042, 40.957, 2.12, 5},
	{"Denebola", 8.7, 177.265, 14.572, 2.13, 5},
	{"Alphecca", 8.9, 233.672, 26.715, 2.23, 4},
	{"Mintaka", 9.6, 83.002, -0.299, 2.23, 4},
	{"Sadr", 9.4, 305.557, 40.257, 2.23, 4},
	{"Eltanin", 9.0, 269.152, 51.489, 2.23, 4},
	{"Schedar", 9.2, 10.127, 56.537, 2.23, 4},
	{"Caph", 8.8, 2.295, 59.150, 2.27, 4},
	{"Enif", 9.1, 326.046, 9.875, 2.39, 4},
	{"Ankaa", 9.0, 6.571, -42.306, 2.38, 4},
	{"Phecda", 8.7, 178.458, 53.695, 2.44, 4},
	{"Sabik", 9.2, 257.595, -15.725, 2.43, 4},
	{"Scheat", 8.9, 345.944, 28.083, 2.42, 4},
	{"Alderamin", 9.1, 319.645, 62.586, 2.51, 4},
	{"Markab", 8.8, 346.190, 15.205, 2.49, 4},
	{"Gienah", 9.0, 183.952, -17.542, 2.59, 3},
	{"Unukalhai", 8.9, 236.067, 6.426, 2.65, 3},
	{"Sheratan", 8.8, 28.660, 20.808, 2.64, 3},
	{"Zosma", 8.9, 168.527, 20.524, 2.56, 3},
	{"Arneb", 9.4, 83.183, -17.822, 2.58, 3},
	{"Rastaban", 9.2, 262.608, 52.301, 2.79, 3},
	{"Cor Caroli", 8.8, 194.007, 38.318, 2.81, 3},
	{"Vindemiatrix", 8.9, 195.544, 10.959, 2.83, 3},
	{"Porrima", 8.9, 190.415, -1.449, 2.74, 3},
	{"Albireo", 9.0, 292.680, 27.960, 3.18, 3},
	{"Sadalmelik", 9.1, 331.446, -0.320, 2.96, 3},
	{"Sadalsuud", 9.0, 322.890, -5.571, 2.91, 3},
	{"Alcyone", 9.2, 56.871, 24.105, 2.87, 3},
	{"Tarazed", 8.9, 296.565, 10.613, 2.72, 3},
	{"Nihal", 9.3, 82.061, -20.759, 2.84, 3},
	{"Talitha", 8.8, 134.802, 48.042, 3.14, 2},
	{"Megrez", 8.7, 183.857, 57.033, 3.31, 2},
	{"Thuban", 9.1, 211.097, 64.376, 3.65, 2},
	{"Alcor", 8.6, 201.306, 54.988, 3.99, 2},
	{"Alshain", 8.9, 298.828, 6.407, 3.71, 2},
	{"Wazn", 9.2, 90.399, -35.768, 3.85, 2},
	{"Alula Australis", 8.8, 169.545, 31.529, 3.78, 2},
	{"Saclateni", 9.0, 79.402, 40.010, 3.69, 2},
	{"Furud", 9.3, 95.078, -30.063, 3.96, 2},
}
