// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package discover

// KnownArtists is the fixed spelling-correction vocabulary: well-known
// artist names in both short and full forms. Order matters only for
// tie-breaking between equally distant entries (first wins).
var KnownArtists = []string{
	"Rembrandt", "Rembrandt van Rijn", "Vermeer", "Johannes Vermeer",
	"Van Gogh", "Vincent van Gogh", "Monet", "Claude Monet",
	"Picasso", "Pablo Picasso", "Renoir", "Pierre-Auguste Renoir",
	"Cézanne", "Paul Cézanne", "Degas", "Edgar Degas",
	"Manet", "Édouard Manet", "Matisse", "Henri Matisse",
	"Kandinsky", "Wassily Kandinsky", "Klimt", "Gustav Klimt",
	"Michelangelo", "Leonardo da Vinci", "Raphael", "Caravaggio",
	"Titian", "Botticelli", "Dürer", "Albrecht Dürer",
	"Rubens", "Peter Paul Rubens", "Velázquez", "Diego Velázquez",
	"El Greco", "Goya", "Francisco Goya", "Turner", "J.M.W. Turner",
	"Constable", "John Constable", "Gainsborough", "Thomas Gainsborough",
	"Hopper", "Edward Hopper", "Whistler", "James McNeill Whistler",
	"Sargent", "John Singer Sargent", "Homer", "Winslow Homer",
	"Cassatt", "Mary Cassatt", "Seurat", "Georges Seurat",
	"Toulouse-Lautrec", "Henri de Toulouse-Lautrec",
	"Canaletto", "Tiepolo", "Bellini", "Giovanni Bellini",
	"Tintoretto", "Veronese", "Hals", "Frans Hals",
	"Steen", "Jan Steen", "Ruisdael", "Jacob van Ruisdael",
	"Hobbema", "Meindert Hobbema", "Avercamp", "Hendrick Avercamp",
	"Ter Borch", "Gerard ter Borch", "De Hooch", "Pieter de Hooch",
	"Bruegel", "Pieter Bruegel", "Bosch", "Hieronymus Bosch",
	"Van Eyck", "Jan van Eyck", "Memling", "Hans Memling",
	"Holbein", "Hans Holbein", "Cranach", "Lucas Cranach",
	"Poussin", "Nicolas Poussin", "Lorrain", "Claude Lorrain",
	"Watteau", "Antoine Watteau", "Fragonard", "Jean-Honoré Fragonard",
	"David", "Jacques-Louis David", "Ingres", "Jean-Auguste-Dominique Ingres",
	"Delacroix", "Eugène Delacroix", "Courbet", "Gustave Courbet",
	"Millet", "Jean-François Millet", "Corot", "Jean-Baptiste-Camille Corot",
	"Sisley", "Alfred Sisley", "Pissarro", "Camille Pissarro",
	"Caillebotte", "Gustave Caillebotte", "Morisot", "Berthe Morisot",
	"Gauguin", "Paul Gauguin", "Van Dyck", "Anthony van Dyck",
	"Toorop", "Jan Toorop", "Mondrian", "Piet Mondrian",
	// Skagen Painters (Denmark)
	"P.S. Krøyer", "Peder Severin Krøyer", "Krøyer",
	"Anna Ancher", "Michael Ancher", "Ancher",
	"Marie Krøyer", "Viggo Johansen", "Oscar Björck",
	"Holger Drachmann", "Christian Krohg", "Laurits Tuxen",
	// Danish Golden Age
	"C.W. Eckersberg", "Christen Købke", "Wilhelm Hammershøi",
	"Vilhelm Hammershøi", "Hammershøi",
}
