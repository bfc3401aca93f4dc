package component

// WidgetComponent declares an entity's widget kind, the coarsest style fact
// Kind is free-form; selectors naming a kind no entity carries never match
type WidgetComponent struct {
	Kind string
}

// ClassListComponent holds an entity's style classes in application order
// When two classes set the same field, the later class in this list wins
type ClassListComponent struct {
	Classes []string
}
