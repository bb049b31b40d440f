package speak

import "io"

// Demo runs the fixed entry sequence against w: two enum trainers (dog, cat),
// a generic cat trainer, two function trainers (dog, cat) and a const
// trainer with tag 1. It writes six lines.
func Demo(w io.Writer) {
	EnumTrainer{Animal: AnimalDog()}.AskAnimalToSpeakTo(w)
	EnumTrainer{Animal: AnimalCat()}.AskAnimalToSpeakTo(w)

	GenericTrainer[Cat]{Animal: Cat{}}.AskAnimalToSpeakTo(w)

	FuncTrainer{SpeakFn: DogSpeak}.AskAnimalToSpeakTo(w)
	FuncTrainer{SpeakFn: CatSpeak}.AskAnimalToSpeakTo(w)

	ConstTrainer[Tag1]{}.AskAnimalToSpeakTo(w)
}

// Run asks each trainer to speak against w, in order.
func Run(w io.Writer, trainers []Trainer) {
	for _, t := range trainers {
		t.AskAnimalToSpeakTo(w)
	}
}
