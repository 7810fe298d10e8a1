// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

package discover

// Static category tables. Slice order is presentation order and also the
// weekly spotlight rotation order for eras.

var eras = []Category{
	{
		Key:         "renaissance",
		Kind:        KindEra,
		Name:        "Renaissance",
		Years:       "1400-1600",
		Description: "Rebirth of classical ideals. Perspective, humanism, and mastery of form.",
		Artists:     []string{"Leonardo da Vinci", "Michelangelo", "Raphael", "Botticelli", "Titian", "Jan van Eyck", "Dürer"},
		SearchTerms: []string{"renaissance", "Leonardo", "Michelangelo", "Raphael", "Botticelli"},
		WallColor:   "#4A3728",
	},
	{
		Key:         "baroque",
		Kind:        KindEra,
		Name:        "Baroque",
		Years:       "1600-1750",
		Description: "Drama, grandeur, and emotional intensity. Rich colors and bold contrasts.",
		Artists:     []string{"Caravaggio", "Rembrandt", "Vermeer", "Rubens", "Velázquez"},
		SearchTerms: []string{"baroque", "Rembrandt", "Vermeer", "Caravaggio", "Rubens"},
		WallColor:   "#8B2332",
	},
	{
		Key:         "rococo",
		Kind:        KindEra,
		Name:        "Rococo",
		Years:       "1720-1780",
		Description: "Elegance, lightness, and playful themes. Soft colors and ornate detail.",
		Artists:     []string{"Watteau", "Fragonard", "Boucher", "Tiepolo"},
		SearchTerms: []string{"rococo", "Watteau", "Fragonard", "Boucher"},
		WallColor:   "#D4C5B9",
	},
	{
		Key:         "romanticism",
		Kind:        KindEra,
		Name:        "Romanticism",
		Years:       "1780-1850",
		Description: "Emotion, nature, and the sublime. Dramatic landscapes and heroic subjects.",
		Artists:     []string{"Turner", "Delacroix", "Goya", "Constable", "Friedrich"},
		SearchTerms: []string{"romantic", "Turner", "Delacroix", "Goya", "Constable"},
		WallColor:   "#2D4739",
	},
	{
		Key:         "impressionism",
		Kind:        KindEra,
		Name:        "Impressionism",
		Years:       "1860-1890",
		Description: "Light, color, and the fleeting moment. Visible brushstrokes and everyday scenes.",
		Artists:     []string{"Monet", "Renoir", "Degas", "Pissarro", "Morisot", "Cassatt", "Sisley"},
		SearchTerms: []string{"impressionist", "Monet", "Renoir", "Degas", "Pissarro"},
		WallColor:   "#E8E4DF",
	},
	{
		Key:         "post-impressionism",
		Kind:        KindEra,
		Name:        "Post-Impressionism",
		Years:       "1886-1910",
		Description: "Beyond Impressionism. Bold colors, symbolic content, and emotional expression.",
		Artists:     []string{"Van Gogh", "Gauguin", "Seurat", "Toulouse-Lautrec", "Edvard Munch"},
		SearchTerms: []string{"Van Gogh", "Gauguin", "Seurat", "post-impressionist"},
		WallColor:   "#F5E6D3",
	},
	{
		Key:         "modern",
		Kind:        KindEra,
		Name:        "Modern",
		Years:       "1900-1970",
		Description: "Breaking traditions. Abstraction, expression, and new ways of seeing.",
		Artists:     []string{"Matisse", "Kandinsky", "Mondrian", "Klimt", "Edvard Munch"},
		SearchTerms: []string{"modern art", "Matisse", "Kandinsky", "Klimt", "abstract"},
		WallColor:   "#FFFFFF",
	},
	{
		Key:         "dutch-golden-age",
		Kind:        KindEra,
		Name:        "Dutch Golden Age",
		Years:       "1600-1700",
		Description: "Mastery of light and domestic scenes. Portraits, still lifes, and landscapes.",
		Artists:     []string{"Rembrandt", "Vermeer", "Hals", "Steen", "Ruisdael", "de Hooch"},
		SearchTerms: []string{"dutch golden age", "Vermeer", "Rembrandt", "Hals"},
		WallColor:   "#3D3D3D",
	},
}

var themes = []Category{
	{
		Key:         "landscapes",
		Kind:        KindTheme,
		Name:        "Landscapes",
		Description: "Mountains, seas, fields, and skies. Nature in all its forms.",
		SearchTerms: []string{"landscape", "seascape", "countryside", "mountains"},
		Icon:        "🏔️",
	},
	{
		Key:         "portraits",
		Kind:        KindTheme,
		Name:        "Portraits",
		Description: "The human face and figure. Identity, status, and inner life.",
		SearchTerms: []string{"portrait", "self-portrait", "figure"},
		Icon:        "👤",
	},
	{
		Key:         "still-life",
		Kind:        KindTheme,
		Name:        "Still Life",
		Description: "Objects arranged with care. Flowers, fruit, and everyday things.",
		SearchTerms: []string{"still life", "flowers", "fruit", "vanitas"},
		Icon:        "🍎",
	},
	{
		Key:         "religious",
		Kind:        KindTheme,
		Name:        "Religious",
		Description: "Sacred stories and divine figures. Faith made visible.",
		SearchTerms: []string{"madonna", "crucifixion", "saints", "biblical"},
		Icon:        "✝️",
	},
	{
		Key:         "mythology",
		Kind:        KindTheme,
		Name:        "Mythology",
		Description: "Gods, heroes, and ancient tales. Classical stories reimagined.",
		SearchTerms: []string{"mythology", "Venus", "Apollo", "Greek", "Roman myth"},
		Icon:        "🏛️",
	},
	{
		Key:         "daily-life",
		Kind:        KindTheme,
		Name:        "Daily Life",
		Description: "Ordinary moments. People at work, at play, at home.",
		SearchTerms: []string{"genre scene", "domestic", "peasant", "interior"},
		Icon:        "🏠",
	},
	{
		Key:         "historical",
		Kind:        KindTheme,
		Name:        "Historical",
		Description: "Great events and turning points. History on canvas.",
		SearchTerms: []string{"battle", "historical", "coronation", "revolution"},
		Icon:        "⚔️",
	},
	{
		Key:         "marine",
		Kind:        KindTheme,
		Name:        "Marine & Ships",
		Description: "The sea, ships, and maritime life.",
		SearchTerms: []string{"marine", "ship", "sea", "naval", "harbor"},
		Icon:        "⛵",
	},
}

var moods = []Category{
	{
		Key:         "peaceful",
		Kind:        KindMood,
		Name:        "Peaceful",
		Description: "Calm, serene, and contemplative.",
		SearchTerms: []string{"pastoral", "garden", "quiet", "serene"},
		Artists:     []string{"Monet", "Vermeer", "Corot", "Constable"},
	},
	{
		Key:         "dramatic",
		Kind:        KindMood,
		Name:        "Dramatic",
		Description: "Intense, powerful, and emotionally charged.",
		SearchTerms: []string{"storm", "dramatic", "battle"},
		Artists:     []string{"Caravaggio", "Delacroix", "Turner", "Goya"},
	},
	{
		Key:         "joyful",
		Kind:        KindMood,
		Name:        "Joyful",
		Description: "Happy, celebratory, and full of life.",
		SearchTerms: []string{"dance", "celebration", "festival", "party"},
		Artists:     []string{"Renoir", "Fragonard", "Watteau"},
	},
	{
		Key:         "melancholic",
		Kind:        KindMood,
		Name:        "Melancholic",
		Description: "Thoughtful, sad, or wistful.",
		SearchTerms: []string{"solitude", "winter", "twilight"},
		Artists:     []string{"Hopper", "Friedrich", "Munch"},
	},
	{
		Key:         "mysterious",
		Kind:        KindMood,
		Name:        "Mysterious",
		Description: "Enigmatic, dreamlike, and intriguing.",
		SearchTerms: []string{"night", "dream", "mystery", "symbolic"},
		Artists:     []string{"Bosch", "Redon", "de Chirico", "Magritte"},
	},
}

var featuredArtists = []FeaturedArtist{
	{
		Name:     "Vermeer",
		FullName: "Johannes Vermeer",
		Era:      "dutch-golden-age",
		Bio:      "Master of light and domestic scenes. Only ~35 paintings survive.",
	},
	{
		Name:     "Monet",
		FullName: "Claude Monet",
		Era:      "impressionism",
		Bio:      "Father of Impressionism. Obsessed with capturing light and atmosphere.",
	},
	{
		Name:     "Rembrandt",
		FullName: "Rembrandt van Rijn",
		Era:      "baroque",
		Bio:      "Master of shadow and human emotion. Greatest portrait painter of his age.",
	},
	{
		Name:     "Van Gogh",
		FullName: "Vincent van Gogh",
		Era:      "post-impressionism",
		Bio:      "Bold colors, emotional intensity. Sold one painting in his lifetime.",
	},
	{
		Name:     "Caravaggio",
		FullName: "Michelangelo Merisi da Caravaggio",
		Era:      "baroque",
		Bio:      "Revolutionary use of light and shadow. Violent life, profound art.",
	},
}
