// Command lilymidi prints LilyPond notes for what is played on a MIDI keyboard.
package main

func main() {
	Execute()
}
