package core

// Action is what the tool does with the loaded config.
type Action interface {
	Run(config Config) error
}
