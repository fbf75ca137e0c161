package astro

// Star represents a cataloged star with position and brightness.
type Star struct {
	Name    string  // Common name (e.g., "Sirius", "Vega")
	RAHours float64 // Right Ascension in hours [0, 24) (J2000)
	DecDeg  float64 // Declination in degrees (J2000)
	Mag     float64 // Apparent visual magnitude (lower = brighter)
}

// DefaultStarCatalog returns the built-in table of bright named stars.
// Coordinates are J2000 epoch. Indices are stable for the life of the process.
//
// Data sourced from Yale Bright Star Catalog and IAU star names.
func DefaultStarCatalog() []Star {
	stars := make([]Star, len(defaultStars))
	copy(stars, defaultStars)
	return stars
}

// defaultStars contains bright stars visible from various latitudes.
// Ordered roughly by magnitude (brightest first).
var defaultStars = []Star{
	// Magnitude < 0 (exceptionally bright)
	{"Sirius", 6.7525, -16.716, -1.46},
	{"Canopus", 6.3992, -52.696, -0.74},
	{"Arcturus", 14.2610, 19.182, -0.05},
	{"Vega", 18.6157, 38.784, 0.03},
	{"Capella", 5.2781, 45.998, 0.08},
	{"Rigel", 5.2423, -8.202, 0.13},
	{"Procyon", 7.6551, 5.225, 0.34},
	{"Achernar", 1.6286, -57.237, 0.46},
	{"Betelgeuse", 5.9195, 7.407, 0.50},
	{"Hadar", 14.0637, -60.373, 0.61},

	// Magnitude 0.5-1.0
	{"Altair", 19.8464, 8.868, 0.76},
	{"Acrux", 12.4433, -63.099, 0.76},
	{"Aldebaran", 4.5987, 16.509, 0.85},
	{"Antares", 16.4901, -26.432, 0.96},
	{"Spica", 13.4199, -11.161, 0.97},
	{"Pollux", 7.7553, 28.026, 1.14},

	// Magnitude 1.0-1.5
	{"Fomalhaut", 22.9609, -29.622, 1.16},
	{"Deneb", 20.6905, 45.280, 1.25},
	{"Mimosa", 12.7953, -59.689, 1.25},
	{"Regulus", 10.1395, 11.967, 1.35},
	{"Adhara", 6.9771, -28.972, 1.50},
	{"Castor", 7.5767, 31.889, 1.58},

	// Magnitude 1.5-2.0
	{"Gacrux", 12.5194, -57.113, 1.63},
	{"Shaula", 17.5601, -37.104, 1.63},
	{"Bellatrix", 5.4189, 6.350, 1.64},
	{"Elnath", 5.4382, 28.608, 1.65},
	{"Miaplacidus", 9.2200, -69.717, 1.68},
	{"Alnilam", 5.6035, -1.202, 1.69},
	{"Alnair", 22.1372, -46.961, 1.74},
	{"Alnitak", 5.6793, -1.943, 1.77},
	{"Alioth", 12.9005, 55.960, 1.77},
	{"Dubhe", 11.0621, 61.751, 1.79},
	{"Mirfak", 3.4054, 49.861, 1.79},
	{"Wezen", 7.1399, -26.393, 1.84},
	{"Sargas", 17.6220, -42.998, 1.87},
	{"Kaus Australis", 18.4029, -34.384, 1.85},
	{"Avior", 8.3753, -59.509, 1.86},
	{"Alkaid", 13.7923, 49.313, 1.86},
	{"Menkalinan", 5.9921, 44.948, 1.90},
	{"Atria", 16.8111, -69.028, 1.92},
	{"Alhena", 6.6285, 16.399, 1.93},
	{"Peacock", 20.4275, -56.735, 1.94},
	{"Alsephina", 8.7451, -54.709, 1.96},
	{"Mirzam", 6.3783, -17.956, 1.98},
	{"Polaris", 2.5303, 89.264, 2.02},
	{"Alphard", 9.4598, -8.659, 2.00},

	// Magnitude 2.0-2.5
	{"Hamal", 2.1195, 23.463, 2.00},
	{"Algieba", 9.7642, 19.842, 2.08},
	{"Diphda", 0.7265, -17.987, 2.02},
	{"Nunki", 18.9211, -26.297, 2.02},
	{"Mizar", 13.3987, 54.925, 2.04},
	{"Alpheratz", 0.1398, 29.091, 2.06},
	{"Saiph", 5.7959, -9.670, 2.09},
	{"Mirach", 1.1622, 35.621, 2.05},
	{"Kochab", 14.8451, 74.156, 2.08},
	{"Rasalhague", 17.5823, 12.560, 2.08},
	{"Algol", 3.1361, 40.957, 2.12},
	{"Denebola", 11.8177, 14.572, 2.13},
	{"Muhlifain", 12.6919, -48.960, 2.17},
	{"Naos", 8.0597, -40.003, 2.25},
	{"Aspidiske", 9.2849, -59.275, 2.25},
	{"Suhail", 9.1333, -43.433, 2.21},
	{"Alphecca", 15.5781, 26.715, 2.23},
	{"Mintaka", 5.5335, -0.299, 2.23},
	{"Sadr", 20.3705, 40.257, 2.23},
	{"Eltanin", 17.9435, 51.489, 2.23},
	{"Schedar", 0.6751, 56.537, 2.23},
	{"Caph", 0.1530, 59.150, 2.27},
	{"Dschubba", 16.0055, -22.622, 2.32},
	{"Larawag", 16.9770, -34.293, 2.29},
	{"Merak", 11.0307, 56.382, 2.37},
	{"Izar", 14.7498, 27.074, 2.37},

	// Magnitude 2.5-3.0
	{"Enif", 21.7364, 9.875, 2.39},
	{"Ankaa", 0.4381, -42.306, 2.38},
	{"Phecda", 11.8972, 53.695, 2.44},
	{"Sabik", 17.1730, -15.725, 2.43},
	{"Scheat", 23.0629, 28.083, 2.42},
	{"Alderamin", 21.3097, 62.586, 2.51},
	{"Aludra", 7.4016, -29.303, 2.45},
	{"Markeb", 9.3685, -55.011, 2.47},
	{"Girtab", 17.7081, -39.030, 2.41},
	{"Navi", 0.9451, 60.717, 2.47},
	{"Markab", 23.0793, 15.205, 2.49},
	{"Aljanah", 20.7702, 33.970, 2.48},
	{"Acrab", 16.0906, -19.805, 2.62},

	// Magnitude 3.0-3.5
	{"Aldhanab", 21.3311, -16.127, 3.00},
	{"Gienah", 12.2635, -17.542, 2.59},
	{"Zubeneschamali", 15.2835, -9.383, 2.61},
	{"Unukalhai", 15.7378, 6.426, 2.65},
	{"Sheratan", 1.9107, 20.808, 2.64},
	{"Phact", 5.6608, -34.074, 2.64},
	{"Menkent", 14.1114, -36.370, 2.06},
	{"Zosma", 11.2351, 20.524, 2.56},
	{"Arneb", 5.5455, -17.822, 2.58},
	{"Gomeisa", 7.4525, 8.289, 2.90},
	{"Deneb Kaitos", 0.7265, -17.987, 2.04},
	{"Thuban", 14.0731, 64.376, 3.65},
	{"Rastaban", 17.5072, 52.301, 2.79},
	{"Cor Caroli", 12.9338, 38.318, 2.81},
	{"Vindemiatrix", 13.0363, 10.959, 2.83},
	{"Algorab", 12.4977, -16.515, 2.95},
	{"Zubenelgenubi", 14.8480, -16.042, 2.75},
	{"Porrima", 12.6943, -1.449, 2.74},

	// Magnitude 3.5-4.0 (subtle stars)
	{"Albireo", 19.5120, 27.960, 3.18},
	{"Sadalmelik", 22.0964, -0.320, 2.96},
	{"Sadalsuud", 21.5260, -5.571, 2.91},
	{"Yed Prior", 16.2391, -3.694, 2.75},
	{"Alcyone", 3.7914, 24.105, 2.87},
	{"Tarazed", 19.7710, 10.613, 2.72},
	{"Alshain", 19.9219, 6.407, 3.71},
	{"Nihal", 5.4707, -20.759, 2.84},
	{"Wazn", 6.0266, -35.768, 3.85},
	{"Muscida", 8.5044, 60.718, 3.35},
	{"Talitha", 8.9868, 48.042, 3.14},
	{"Tania Australis", 10.3721, 41.499, 3.05},
	{"Alula Australis", 11.3030, 31.529, 3.78},
	{"Megrez", 12.2571, 57.033, 3.31},
	{"Alcor", 13.4204, 54.988, 3.99},
	{"Syrma", 14.2669, -6.001, 4.08},
	{"Khambalia", 14.5918, -13.371, 4.66},
	{"Kraz", 12.5731, -23.397, 2.65},
	{"Alkes", 10.9963, -18.299, 4.08},
	{"Minkar", 12.1687, -22.620, 3.02},
	{"Sceptrum", 4.1977, -8.898, 4.45},
	{"Cursa", 5.1309, -5.086, 2.79},
	{"Hassaleh", 5.0328, 33.166, 2.69},
	{"Hoedus I", 5.0413, 41.234, 3.04},
	{"Hoedus II", 5.0165, 41.076, 3.17},
	{"Saclateni", 5.2935, 40.010, 3.69},

	// Magnitude 4.0-4.5 (dim background stars)
	{"Furud", 6.3385, -30.063, 3.96},
	{"Muliphein", 7.0627, -15.633, 4.11},
	{"Tejat", 6.3827, 22.513, 2.88},
	{"Mebsuta", 6.7322, 25.131, 3.06},
	{"Propus", 6.2479, 22.506, 3.28},
	{"Wasat", 7.3354, 21.982, 3.53},
	{"Kappa Gem", 7.7408, 24.398, 3.57},
	{"Asellus Australis", 8.7447, 18.154, 3.94},
	{"Asellus Borealis", 8.7214, 21.469, 4.66},
	{"Acubens", 8.9748, 11.858, 4.25},
	{"Alterf", 9.3141, 22.968, 4.31},
	{"Rasalas", 9.7642, 26.007, 3.88},
	{"Adhafera", 10.2782, 23.417, 3.43},
	{"Subra", 9.8794, 9.893, 3.52},
	{"Chertan", 11.2373, 15.430, 3.33},
	{"Zavijava", 11.8449, 1.765, 3.61},

	// Magnitude 4.5-5.0 (very dim, adds density)
	{"Tyl", 19.2293, 67.661, 4.01},
	{"Edasich", 15.4155, 58.966, 3.29},
	{"Giausar", 11.7295, 69.331, 3.85},
	{"Grumium", 17.8921, 56.873, 3.75},
	{"Alsafi", 18.8347, 52.301, 4.67},
	{"Alrakis", 16.3999, 61.514, 4.67},
	{"Dziban", 18.0108, 72.149, 4.54},
	{"Pherkad", 15.3455, 71.834, 3.00},
	{"Yildun", 17.5369, 86.586, 4.36},
	{"Epsilon Dra", 19.8029, 70.268, 3.83},
	{"Chi Dra", 18.3311, 72.733, 3.57},
	{"Gianfar", 18.9382, 75.388, 4.13},
	{"Aldhibah", 17.0895, 65.715, 3.17},
	{"Nodus Secundus", 16.4665, 61.514, 3.07},
	{"Tania Borealis", 10.2849, 42.914, 3.45},
	{"Alula Borealis", 11.3080, 33.094, 3.49},
	{"Chara", 12.5624, 41.357, 4.26},
	{"Asterion", 12.9526, 38.318, 4.25},
	{"Diadem", 13.1665, 17.529, 4.32},
	{"Zaniah", 12.3317, -0.667, 3.89},
	{"Auva", 12.8570, 3.397, 3.38},
	{"Heze", 13.5782, -0.596, 3.37},
}
