package domain

// Town is a catalog entry. Entries without a name are not selectable.
type Town struct {
	Name string `json:"name"`
}

// TownOption is one selectable town. Value is what the draft stores.
type TownOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
