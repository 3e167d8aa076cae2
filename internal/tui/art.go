package tui

import (
	"github.com/fakeyudi/lemonade/internal/config"
	"github.com/fakeyudi/lemonade/internal/lemonade"
)

var asciiArt = map[lemonade.Image]string{
	lemonade.ImageLemonTree: `
      .-~~~-.
   .-~  o  o ~-.
  (  o   o   o  )
   '-.  o  o .-'
      '-|  |-'
        |  |
      __|__|__`,
	lemonade.ImageSqueeze: `
        _____
     .-'     '-.
    /   .---.   \
   |   ( ~~~ )   |
    \   '---'   /
     '-._____.-'
    ~~ squeeze ~~`,
	lemonade.ImageDrink: `
     .---------.
     |~~~~~~~~~|
     |  o   o  |
     |   ___   |
     |  (___)  |
     |         |
     '---------'`,
	lemonade.ImageRestart: `
     .---------.
     |         |
     |         |
     |         |
     |         |
     |         |
     '---------'`,
	lemonade.ImageEmoji: `
       .-----.
     .'       '.
    /  O     O  \
   |      >      |
    \  '.___.'  /
     '.       .'
       '-----'`,
}

// artFor returns the drawing for img in the given style ("ascii" or "plain").
func artFor(img lemonade.Image, style string) string {
	if style == config.ArtPlain {
		return "[" + string(img) + "]"
	}
	if a, ok := asciiArt[img]; ok {
		return a[1:] // drop the leading newline of the raw string
	}
	return "[" + string(img) + "]"
}
