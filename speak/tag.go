package speak

// Tag lifts an integer constant to the type level so it can parameterize
// ConstTrainer. Implementations are zero-size and return a fixed value.
type Tag interface {
	Value() int
}

// Table keys.
const (
	TagCat = 1
	TagDog = 2
)

type (
	// Tag0 is outside the table.
	Tag0 struct{}
	// Tag1 selects the cat-like greeting.
	Tag1 struct{}
	// Tag2 selects the dog-like greeting.
	Tag2 struct{}
	// Tag3 is outside the table.
	Tag3 struct{}
)

func (Tag0) Value() int { return 0 }
func (Tag1) Value() int { return TagCat }
func (Tag2) Value() int { return TagDog }
func (Tag3) Value() int { return 3 }

// Behavior returns the greeting for the constant carried by N.
func Behavior[N Tag]() string {
	var n N
	return BehaviorOf(n.Value())
}

// BehaviorOf looks n up in the fixed table. Every int maps to a string;
// values other than TagCat and TagDog yield UnknownAnimal.
func BehaviorOf(n int) string {
	switch n {
	case TagCat:
		return Cat{}.Speak()
	case TagDog:
		return Dog{}.Speak()
	default:
		return UnknownAnimal
	}
}
