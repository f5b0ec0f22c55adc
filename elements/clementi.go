/*
 * clementi.go, part of goZeff.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package elements

// ClementiMaxZ is the first atomic number for which the Clementi-Raimondi
// parametrization gives no values.
const ClementiMaxZ = 87

//Effective nuclear charges from the SCF functions of
//E. Clementi and D. L. Raimondi, J. Chem. Phys. 38, 2686 (1963).
//The paper covers H to Kr. Heavier elements (up to Rn) can be
//added with a dataset file, see Load.
var clementiRaimondi = map[string]map[string]float64{
	"H":  {"1s": 1.000},
	"He": {"1s": 1.6875},
	"Li": {"1s": 2.691, "2s": 1.279},
	"Be": {"1s": 3.685, "2s": 1.912},
	"B":  {"1s": 4.680, "2s": 2.576, "2p": 2.421},
	"C":  {"1s": 5.673, "2s": 3.217, "2p": 3.136},
	"N":  {"1s": 6.6651, "2s": 3.8474, "2p": 3.8340},
	"O":  {"1s": 7.658, "2s": 4.492, "2p": 4.453},
	"F":  {"1s": 8.650, "2s": 5.128, "2p": 5.100},
	"Ne": {"1s": 9.642, "2s": 5.758, "2p": 5.758},
	"Na": {"1s": 10.626, "2s": 6.571, "2p": 6.802, "3s": 2.507},
	"Mg": {"1s": 11.619, "2s": 7.392, "2p": 7.826, "3s": 3.308},
	"Al": {"1s": 12.591, "2s": 8.214, "2p": 8.963, "3s": 4.117, "3p": 4.066},
	"Si": {"1s": 13.575, "2s": 9.020, "2p": 9.945, "3s": 4.903, "3p": 4.285},
	"P":  {"1s": 14.558, "2s": 9.825, "2p": 10.961, "3s": 5.642, "3p": 4.886},
	"S":  {"1s": 15.541, "2s": 10.629, "2p": 11.977, "3s": 6.367, "3p": 5.482},
	"Cl": {"1s": 16.524, "2s": 11.430, "2p": 12.993, "3s": 7.068, "3p": 6.116},
	"Ar": {"1s": 17.508, "2s": 12.230, "2p": 14.008, "3s": 7.757, "3p": 6.764},
	"K":  {"1s": 18.490, "2s": 13.006, "2p": 15.027, "3s": 8.680, "3p": 7.726, "4s": 3.495},
	"Ca": {"1s": 19.473, "2s": 13.776, "2p": 16.041, "3s": 9.602, "3p": 8.658, "4s": 4.398},
	"Sc": {"1s": 20.457, "2s": 14.574, "2p": 17.055, "3s": 10.340, "3p": 9.406, "4s": 4.632, "3d": 7.120},
	"Ti": {"1s": 21.441, "2s": 15.377, "2p": 18.065, "3s": 11.033, "3p": 10.104, "4s": 4.817, "3d": 8.141},
	"V":  {"1s": 22.426, "2s": 16.181, "2p": 19.073, "3s": 11.709, "3p": 10.785, "4s": 4.981, "3d": 8.983},
	"Cr": {"1s": 23.414, "2s": 16.984, "2p": 20.075, "3s": 12.368, "3p": 11.466, "4s": 5.133, "3d": 9.757},
	"Mn": {"1s": 24.396, "2s": 17.794, "2p": 21.084, "3s": 13.018, "3p": 12.109, "4s": 5.283, "3d": 10.528},
	"Fe": {"1s": 25.381, "2s": 18.599, "2p": 22.089, "3s": 13.676, "3p": 12.778, "4s": 5.434, "3d": 11.180},
	"Co": {"1s": 26.367, "2s": 19.405, "2p": 23.092, "3s": 14.322, "3p": 13.435, "4s": 5.576, "3d": 11.855},
	"Ni": {"1s": 27.353, "2s": 20.213, "2p": 24.095, "3s": 14.961, "3p": 14.085, "4s": 5.711, "3d": 12.530},
	"Cu": {"1s": 28.339, "2s": 21.020, "2p": 25.097, "3s": 15.594, "3p": 14.731, "4s": 5.842, "3d": 13.201},
	"Zn": {"1s": 29.325, "2s": 21.828, "2p": 26.098, "3s": 16.219, "3p": 15.369, "4s": 5.965, "3d": 13.878},
	"Ga": {"1s": 30.309, "2s": 22.599, "2p": 27.091, "3s": 16.996, "3p": 16.204, "4s": 7.067, "3d": 15.093, "4p": 6.222},
	"Ge": {"1s": 31.294, "2s": 23.365, "2p": 28.082, "3s": 17.760, "3p": 17.014, "4s": 8.044, "3d": 16.251, "4p": 6.780},
	"As": {"1s": 32.278, "2s": 24.127, "2p": 29.074, "3s": 18.596, "3p": 17.850, "4s": 8.944, "3d": 17.378, "4p": 7.449},
	"Se": {"1s": 33.262, "2s": 24.888, "2p": 30.065, "3s": 19.403, "3p": 18.705, "4s": 9.758, "3d": 18.477, "4p": 8.287},
	"Br": {"1s": 34.247, "2s": 25.643, "2p": 31.056, "3s": 20.218, "3p": 19.571, "4s": 10.553, "3d": 19.559, "4p": 9.028},
	"Kr": {"1s": 35.232, "2s": 26.398, "2p": 32.047, "3s": 21.033, "3p": 20.434, "4s": 11.316, "3d": 20.626, "4p": 9.769},
}
