package main

import "duel/internal/game"

func main() {
	game.RunDesktop()
}
