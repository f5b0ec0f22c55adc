/*
 * atomicdata.go, part of goZeff.
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

//Ground state configurations for the neutral atoms, in noble-gas shorthand.
//Values from the NIST atomic spectra database. For the superheavy elements
//(Z>103) these are predicted configurations.
var atomicData = []Record{
	{Number: 1, Symbol: "H", Name: "Hydrogen", Configuration: "1s1"},
	{Number: 2, Symbol: "He", Name: "Helium", Configuration: "1s2"},
	{Number: 3, Symbol: "Li", Name: "Lithium", Configuration: "[He] 2s1"},
	{Number: 4, Symbol: "Be", Name: "Beryllium", Configuration: "[He] 2s2"},
	{Number: 5, Symbol: "B", Name: "Boron", Configuration: "[He] 2s2 2p1"},
	{Number: 6, Symbol: "C", Name: "Carbon", Configuration: "[He] 2s2 2p2"},
	{Number: 7, Symbol: "N", Name: "Nitrogen", Configuration: "[He] 2s2 2p3"},
	{Number: 8, Symbol: "O", Name: "Oxygen", Configuration: "[He] 2s2 2p4"},
	{Number: 9, Symbol: "F", Name: "Fluorine", Configuration: "[He] 2s2 2p5"},
	{Number: 10, Symbol: "Ne", Name: "Neon", Configuration: "[He] 2s2 2p6"},
	{Number: 11, Symbol: "Na", Name: "Sodium", Configuration: "[Ne] 3s1"},
	{Number: 12, Symbol: "Mg", Name: "Magnesium", Configuration: "[Ne] 3s2"},
	{Number: 13, Symbol: "Al", Name: "Aluminum", Configuration: "[Ne] 3s2 3p1"},
	{Number: 14, Symbol: "Si", Name: "Silicon", Configuration: "[Ne] 3s2 3p2"},
	{Number: 15, Symbol: "P", Name: "Phosphorus", Configuration: "[Ne] 3s2 3p3"},
	{Number: 16, Symbol: "S", Name: "Sulfur", Configuration: "[Ne] 3s2 3p4"},
	{Number: 17, Symbol: "Cl", Name: "Chlorine", Configuration: "[Ne] 3s2 3p5"},
	{Number: 18, Symbol: "Ar", Name: "Argon", Configuration: "[Ne] 3s2 3p6"},
	{Number: 19, Symbol: "K", Name: "Potassium", Configuration: "[Ar] 4s1"},
	{Number: 20, Symbol: "Ca", Name: "Calcium", Configuration: "[Ar] 4s2"},
	{Number: 21, Symbol: "Sc", Name: "Scandium", Configuration: "[Ar] 3d1 4s2"},
	{Number: 22, Symbol: "Ti", Name: "Titanium", Configuration: "[Ar] 3d2 4s2"},
	{Number: 23, Symbol: "V", Name: "Vanadium", Configuration: "[Ar] 3d3 4s2"},
	{Number: 24, Symbol: "Cr", Name: "Chromium", Configuration: "[Ar] 3d5 4s1"},
	{Number: 25, Symbol: "Mn", Name: "Manganese", Configuration: "[Ar] 3d5 4s2"},
	{Number: 26, Symbol: "Fe", Name: "Iron", Configuration: "[Ar] 3d6 4s2"},
	{Number: 27, Symbol: "Co", Name: "Cobalt", Configuration: "[Ar] 3d7 4s2"},
	{Number: 28, Symbol: "Ni", Name: "Nickel", Configuration: "[Ar] 3d8 4s2"},
	{Number: 29, Symbol: "Cu", Name: "Copper", Configuration: "[Ar] 3d10 4s1"},
	{Number: 30, Symbol: "Zn", Name: "Zinc", Configuration: "[Ar] 3d10 4s2"},
	{Number: 31, Symbol: "Ga", Name: "Gallium", Configuration: "[Ar] 3d10 4s2 4p1"},
	{Number: 32, Symbol: "Ge", Name: "Germanium", Configuration: "[Ar] 3d10 4s2 4p2"},
	{Number: 33, Symbol: "As", Name: "Arsenic", Configuration: "[Ar] 3d10 4s2 4p3"},
	{Number: 34, Symbol: "Se", Name: "Selenium", Configuration: "[Ar] 3d10 4s2 4p4"},
	{Number: 35, Symbol: "Br", Name: "Bromine", Configuration: "[Ar] 3d10 4s2 4p5"},
	{Number: 36, Symbol: "Kr", Name: "Krypton", Configuration: "[Ar] 3d10 4s2 4p6"},
	{Number: 37, Symbol: "Rb", Name: "Rubidium", Configuration: "[Kr] 5s1"},
	{Number: 38, Symbol: "Sr", Name: "Strontium", Configuration: "[Kr] 5s2"},
	{Number: 39, Symbol: "Y", Name: "Yttrium", Configuration: "[Kr] 4d1 5s2"},
	{Number: 40, Symbol: "Zr", Name: "Zirconium", Configuration: "[Kr] 4d2 5s2"},
	{Number: 41, Symbol: "Nb", Name: "Niobium", Configuration: "[Kr] 4d4 5s1"},
	{Number: 42, Symbol: "Mo", Name: "Molybdenum", Configuration: "[Kr] 4d5 5s1"},
	{Number: 43, Symbol: "Tc", Name: "Technetium", Configuration: "[Kr] 4d5 5s2"},
	{Number: 44, Symbol: "Ru", Name: "Ruthenium", Configuration: "[Kr] 4d7 5s1"},
	{Number: 45, Symbol: "Rh", Name: "Rhodium", Configuration: "[Kr] 4d8 5s1"},
	{Number: 46, Symbol: "Pd", Name: "Palladium", Configuration: "[Kr] 4d10"},
	{Number: 47, Symbol: "Ag", Name: "Silver", Configuration: "[Kr] 4d10 5s1"},
	{Number: 48, Symbol: "Cd", Name: "Cadmium", Configuration: "[Kr] 4d10 5s2"},
	{Number: 49, Symbol: "In", Name: "Indium", Configuration: "[Kr] 4d10 5s2 5p1"},
	{Number: 50, Symbol: "Sn", Name: "Tin", Configuration: "[Kr] 4d10 5s2 5p2"},
	{Number: 51, Symbol: "Sb", Name: "Antimony", Configuration: "[Kr] 4d10 5s2 5p3"},
	{Number: 52, Symbol: "Te", Name: "Tellurium", Configuration: "[Kr] 4d10 5s2 5p4"},
	{Number: 53, Symbol: "I", Name: "Iodine", Configuration: "[Kr] 4d10 5s2 5p5"},
	{Number: 54, Symbol: "Xe", Name: "Xenon", Configuration: "[Kr] 4d10 5s2 5p6"},
	{Number: 55, Symbol: "Cs", Name: "Cesium", Configuration: "[Xe] 6s1"},
	{Number: 56, Symbol: "Ba", Name: "Barium", Configuration: "[Xe] 6s2"},
	{Number: 57, Symbol: "La", Name: "Lanthanum", Configuration: "[Xe] 5d1 6s2"},
	{Number: 58, Symbol: "Ce", Name: "Cerium", Configuration: "[Xe] 4f1 5d1 6s2"},
	{Number: 59, Symbol: "Pr", Name: "Praseodymium", Configuration: "[Xe] 4f3 6s2"},
	{Number: 60, Symbol: "Nd", Name: "Neodymium", Configuration: "[Xe] 4f4 6s2"},
	{Number: 61, Symbol: "Pm", Name: "Promethium", Configuration: "[Xe] 4f5 6s2"},
	{Number: 62, Symbol: "Sm", Name: "Samarium", Configuration: "[Xe] 4f6 6s2"},
	{Number: 63, Symbol: "Eu", Name: "Europium", Configuration: "[Xe] 4f7 6s2"},
	{Number: 64, Symbol: "Gd", Name: "Gadolinium", Configuration: "[Xe] 4f7 5d1 6s2"},
	{Number: 65, Symbol: "Tb", Name: "Terbium", Configuration: "[Xe] 4f9 6s2"},
	{Number: 66, Symbol: "Dy", Name: "Dysprosium", Configuration: "[Xe] 4f10 6s2"},
	{Number: 67, Symbol: "Ho", Name: "Holmium", Configuration: "[Xe] 4f11 6s2"},
	{Number: 68, Symbol: "Er", Name: "Erbium", Configuration: "[Xe] 4f12 6s2"},
	{Number: 69, Symbol: "Tm", Name: "Thulium", Configuration: "[Xe] 4f13 6s2"},
	{Number: 70, Symbol: "Yb", Name: "Ytterbium", Configuration: "[Xe] 4f14 6s2"},
	{Number: 71, Symbol: "Lu", Name: "Lutetium", Configuration: "[Xe] 4f14 5d1 6s2"},
	{Number: 72, Symbol: "Hf", Name: "Hafnium", Configuration: "[Xe] 4f14 5d2 6s2"},
	{Number: 73, Symbol: "Ta", Name: "Tantalum", Configuration: "[Xe] 4f14 5d3 6s2"},
	{Number: 74, Symbol: "W", Name: "Tungsten", Configuration: "[Xe] 4f14 5d4 6s2"},
	{Number: 75, Symbol: "Re", Name: "Rhenium", Configuration: "[Xe] 4f14 5d5 6s2"},
	{Number: 76, Symbol: "Os", Name: "Osmium", Configuration: "[Xe] 4f14 5d6 6s2"},
	{Number: 77, Symbol: "Ir", Name: "Iridium", Configuration: "[Xe] 4f14 5d7 6s2"},
	{Number: 78, Symbol: "Pt", Name: "Platinum", Configuration: "[Xe] 4f14 5d9 6s1"},
	{Number: 79, Symbol: "Au", Name: "Gold", Configuration: "[Xe] 4f14 5d10 6s1"},
	{Number: 80, Symbol: "Hg", Name: "Mercury", Configuration: "[Xe] 4f14 5d10 6s2"},
	{Number: 81, Symbol: "Tl", Name: "Thallium", Configuration: "[Xe] 4f14 5d10 6s2 6p1"},
	{Number: 82, Symbol: "Pb", Name: "Lead", Configuration: "[Xe] 4f14 5d10 6s2 6p2"},
	{Number: 83, Symbol: "Bi", Name: "Bismuth", Configuration: "[Xe] 4f14 5d10 6s2 6p3"},
	{Number: 84, Symbol: "Po", Name: "Polonium", Configuration: "[Xe] 4f14 5d10 6s2 6p4"},
	{Number: 85, Symbol: "At", Name: "Astatine", Configuration: "[Xe] 4f14 5d10 6s2 6p5"},
	{Number: 86, Symbol: "Rn", Name: "Radon", Configuration: "[Xe] 4f14 5d10 6s2 6p6"},
	{Number: 87, Symbol: "Fr", Name: "Francium", Configuration: "[Rn] 7s1"},
	{Number: 88, Symbol: "Ra", Name: "Radium", Configuration: "[Rn] 7s2"},
	{Number: 89, Symbol: "Ac", Name: "Actinium", Configuration: "[Rn] 6d1 7s2"},
	{Number: 90, Symbol: "Th", Name: "Thorium", Configuration: "[Rn] 6d2 7s2"},
	{Number: 91, Symbol: "Pa", Name: "Protactinium", Configuration: "[Rn] 5f2 6d1 7s2"},
	{Number: 92, Symbol: "U", Name: "Uranium", Configuration: "[Rn] 5f3 6d1 7s2"},
	{Number: 93, Symbol: "Np", Name: "Neptunium", Configuration: "[Rn] 5f4 6d1 7s2"},
	{Number: 94, Symbol: "Pu", Name: "Plutonium", Configuration: "[Rn] 5f6 7s2"},
	{Number: 95, Symbol: "Am", Name: "Americium", Configuration: "[Rn] 5f7 7s2"},
	{Number: 96, Symbol: "Cm", Name: "Curium", Configuration: "[Rn] 5f7 6d1 7s2"},
	{Number: 97, Symbol: "Bk", Name: "Berkelium", Configuration: "[Rn] 5f9 7s2"},
	{Number: 98, Symbol: "Cf", Name: "Californium", Configuration: "[Rn] 5f10 7s2"},
	{Number: 99, Symbol: "Es", Name: "Einsteinium", Configuration: "[Rn] 5f11 7s2"},
	{Number: 100, Symbol: "Fm", Name: "Fermium", Configuration: "[Rn] 5f12 7s2"},
	{Number: 101, Symbol: "Md", Name: "Mendelevium", Configuration: "[Rn] 5f13 7s2"},
	{Number: 102, Symbol: "No", Name: "Nobelium", Configuration: "[Rn] 5f14 7s2"},
	{Number: 103, Symbol: "Lr", Name: "Lawrencium", Configuration: "[Rn] 5f14 7s2 7p1"},
	{Number: 104, Symbol: "Rf", Name: "Rutherfordium", Configuration: "[Rn] 5f14 6d2 7s2"},
	{Number: 105, Symbol: "Db", Name: "Dubnium", Configuration: "[Rn] 5f14 6d3 7s2"},
	{Number: 106, Symbol: "Sg", Name: "Seaborgium", Configuration: "[Rn] 5f14 6d4 7s2"},
	{Number: 107, Symbol: "Bh", Name: "Bohrium", Configuration: "[Rn] 5f14 6d5 7s2"},
	{Number: 108, Symbol: "Hs", Name: "Hassium", Configuration: "[Rn] 5f14 6d6 7s2"},
	{Number: 109, Symbol: "Mt", Name: "Meitnerium", Configuration: "[Rn] 5f14 6d7 7s2"},
	{Number: 110, Symbol: "Ds", Name: "Darmstadtium", Configuration: "[Rn] 5f14 6d8 7s2"},
	{Number: 111, Symbol: "Rg", Name: "Roentgenium", Configuration: "[Rn] 5f14 6d9 7s2"},
	{Number: 112, Symbol: "Cn", Name: "Copernicium", Configuration: "[Rn] 5f14 6d10 7s2"},
	{Number: 113, Symbol: "Nh", Name: "Nihonium", Configuration: "[Rn] 5f14 6d10 7s2 7p1"},
	{Number: 114, Symbol: "Fl", Name: "Flerovium", Configuration: "[Rn] 5f14 6d10 7s2 7p2"},
	{Number: 115, Symbol: "Mc", Name: "Moscovium", Configuration: "[Rn] 5f14 6d10 7s2 7p3"},
	{Number: 116, Symbol: "Lv", Name: "Livermorium", Configuration: "[Rn] 5f14 6d10 7s2 7p4"},
	{Number: 117, Symbol: "Ts", Name: "Tennessine", Configuration: "[Rn] 5f14 6d10 7s2 7p5"},
	{Number: 118, Symbol: "Og", Name: "Oganesson", Configuration: "[Rn] 5f14 6d10 7s2 7p6"},
}

//Noble gas cores that can appear between brackets
//in a shorthand configuration.
var nobleCores = map[string]string{
	"He": "1s2",
	"Ne": "[He] 2s2 2p6",
	"Ar": "[Ne] 3s2 3p6",
	"Kr": "[Ar] 3d10 4s2 4p6",
	"Xe": "[Kr] 4d10 5s2 5p6",
	"Rn": "[Xe] 4f14 5d10 6s2 6p6",
}
