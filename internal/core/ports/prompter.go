package ports

// Prompter asks the user yes/no questions.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Interactive reports whether questions can be asked at all.
	Interactive() bool
	// Confirm asks question and returns the answer. It keeps asking until it gets
	// "y" or "n".
	Confirm(question string) (bool, error)
}
