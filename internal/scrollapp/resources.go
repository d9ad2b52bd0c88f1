package scrollapp

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log"

	"fyne.io/fyne/v2"
	"golang.org/x/image/draw"

	"github.com/edward-ap/smoothscroll/label"
)

const iconSize = 64

// AppIcon is the window and application icon, rendered at start-up with the
// same bitmap label the scroller drives.
var AppIcon fyne.Resource

func init() {
	data, err := renderIcon()
	if err != nil {
		log.Println("icon render error:", err)
		return
	}
	AppIcon = fyne.NewStaticResource("smoothscroll.png", data)
}

// renderIcon draws ">>" on a blue tile and encodes it as PNG.
func renderIcon() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	tile := color.NRGBA{0x00, 0x99, 0xFF, 0xFF}
	draw.Draw(img, img.Bounds().Inset(2), image.NewUniform(tile), image.Point{}, draw.Src)

	lbl := label.New(label.Options{
		Text:            ">>",
		Color:           color.White,
		BackgroundTight: true,
		Scale:           3,
		AnchorPoint:     label.AnchorPoint{X: 0.5, Y: 0.5},
	})
	lbl.SetAnchoredPosition(image.Pt(iconSize/2, iconSize/2))
	lbl.Draw(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
