package obj

// Input holds the movement intents for one tick. The game loops fill it from
// the keyboard; tests build it directly.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}
