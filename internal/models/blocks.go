package models

// Block représente un nœud de contenu riche (paragraphe, liste, texte...).
// Même structure pour description, features et specifications d'un produit.
type Block struct {
	Type     string  `bson:"type" json:"type"`
	Format   string  `bson:"format,omitempty" json:"format,omitempty"`
	Text     string  `bson:"text,omitempty" json:"text,omitempty"`
	Children []Block `bson:"children,omitempty" json:"children,omitempty"`
}

// ParagraphBlocks construit un contenu riche à partir d'un simple texte
func ParagraphBlocks(text string) []Block {
	return []Block{
		{
			Type:     "paragraph",
			Children: []Block{{Type: "text", Text: text}},
		},
	}
}

// ListBlocks construit une liste non ordonnée à partir d'items texte
func ListBlocks(items []string) []Block {
	children := make([]Block, 0, len(items))
	for _, item := range items {
		children = append(children, Block{
			Type:     "list-item",
			Children: []Block{{Type: "text", Text: item}},
		})
	}
	return []Block{{Type: "list", Format: "unordered", Children: children}}
}
