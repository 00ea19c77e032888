package mutate

// Grounded on original_source/src/mutator/simple.rs: these four
// mutators carry no randomness of their own beyond random_choice's
// pick from a fixed kwarg list.

// FiresOnNull is implemented by the mutations spec.md §4.5 step 4
// still runs against a `\N` sentinel; every other Mutation leaves
// NULL untouched.
type FiresOnNull interface {
	FiresOnNull() bool
}

type nullMutation struct{}

func (nullMutation) Apply(ctx *Context) (string, error) {
	return `\N`, nil
}

func (nullMutation) FiresOnNull() bool { return true }

type emptyStringMutation struct{}

func (emptyStringMutation) Apply(ctx *Context) (string, error) {
	return "", nil
}

func (emptyStringMutation) FiresOnNull() bool { return true }

type fixedValueMutation struct {
	value string
}

func newFixedValueMutation(kwargs map[string]any) (Mutation, error) {
	value, err := kwargString(kwargs, "value", true, "")
	if err != nil {
		return nil, err
	}
	return fixedValueMutation{value: value}, nil
}

func (m fixedValueMutation) Apply(ctx *Context) (string, error) {
	return m.value, nil
}

func (fixedValueMutation) FiresOnNull() bool { return true }

type randomChoiceMutation struct {
	choices []string
}

func newRandomChoiceMutation(kwargs map[string]any) (Mutation, error) {
	choices, err := kwargStrings(kwargs, "choices", true)
	if err != nil {
		return nil, err
	}
	if len(choices) == 0 {
		return nil, errEmptyChoices
	}
	return randomChoiceMutation{choices: choices}, nil
}

func (m randomChoiceMutation) Apply(ctx *Context) (string, error) {
	return m.choices[ctx.Rng.Intn(len(m.choices))], nil
}
