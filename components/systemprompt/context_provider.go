package systemprompt

// ContextProvider contributes a titled block of dynamic information,
// such as the user profile, to a system prompt
type ContextProvider interface {
	Title() string
	Info() string
}
