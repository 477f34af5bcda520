package config

// Shelffile represents the structure of the Shelffile manifest.
type Shelffile struct {
	Cookbooks []CookbookDTO `yaml:"cookbooks"`
}

// CookbookDTO represents a cookbook declaration in the manifest.
type CookbookDTO struct {
	Name         string   `yaml:"name"`
	Constraint   string   `yaml:"constraint"`
	CookbookName string   `yaml:"cookbook_name"`
	Path         string   `yaml:"path"`
	Group        []string `yaml:"group"`
}
