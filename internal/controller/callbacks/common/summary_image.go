package common

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/Freeeeeet/repair_bot/internal/model"
	"github.com/Freeeeeet/repair_bot/internal/service"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Константы размеров и отступов карточки
const (
	cardWidth        = 800
	cardHeight       = 420
	cardPadding      = 40.0
	barHeight        = 28.0
	barGap           = 18.0
	barBorderRadius  = 6.0
	barLabelWidth    = 150.0
	statBoxHeight    = 110.0
	statBoxGap       = 24.0
	statBoxRadius    = 12.0
	titleFontSize    = 30.0
	statFontSize     = 44.0
	statLabelSize    = 16.0
	barLabelFontSize = 16.0
)

// Цветовая схема
var (
	cardBgColor    = color.RGBA{245, 246, 248, 255}
	cardTextColor  = color.RGBA{60, 64, 70, 255}
	cardMutedColor = color.RGBA{120, 125, 130, 255}
	statBoxColor   = color.RGBA{255, 255, 255, 255}
	barTrackColor  = color.RGBA{225, 228, 232, 255}

	statusColors = map[model.BookingStatus]color.Color{
		model.BookingStatusPending:   color.RGBA{255, 193, 7, 255},
		model.BookingStatusConfirmed: color.RGBA{133, 193, 85, 255},
		model.BookingStatusCompleted: color.RGBA{66, 133, 244, 255},
		model.BookingStatusCancelled: color.RGBA{158, 158, 158, 255},
	}
)

// Порядок строк на карточке
var summaryStatuses = []model.BookingStatus{
	model.BookingStatusPending,
	model.BookingStatusConfirmed,
	model.BookingStatusCompleted,
	model.BookingStatusCancelled,
}

var (
	fontsOnce    sync.Once
	regularFont  *opentype.Font
	boldFont     *opentype.Font
	cachedFaces  = make(map[fontKey]font.Face)
	cachedFaceMu sync.Mutex
)

type fontKey struct {
	bold bool
	size float64
}

// loadFont выставляет Go-шрифт нужного размера или basicfont как fallback
func loadFont(dc *gg.Context, size float64, bold bool) {
	fontsOnce.Do(func() {
		regularFont, _ = opentype.Parse(goregular.TTF)
		boldFont, _ = opentype.Parse(gobold.TTF)
	})

	parsed := regularFont
	if bold {
		parsed = boldFont
	}
	if parsed == nil {
		dc.SetFontFace(basicfont.Face7x13)
		return
	}

	cachedFaceMu.Lock()
	defer cachedFaceMu.Unlock()

	key := fontKey{bold: bold, size: size}
	face, ok := cachedFaces[key]
	if !ok {
		var err error
		face, err = opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			dc.SetFontFace(basicfont.Face7x13)
			return
		}
		cachedFaces[key] = face
	}
	dc.SetFontFace(face)
}

// RenderSummaryCard рисует PNG карточку со счётчиками Active/Total
// и полосой на каждый статус
func RenderSummaryCard(list service.BookingList) ([]byte, error) {
	summary := list.DeriveSummary()
	counts := list.CountByStatus()

	dc := gg.NewContext(cardWidth, cardHeight)
	dc.SetColor(cardBgColor)
	dc.Clear()

	loadFont(dc, titleFontSize, true)
	dc.SetColor(cardTextColor)
	dc.DrawStringAnchored("My bookings", cardPadding, cardPadding, 0, 0.5)

	boxY := cardPadding + 30
	boxW := (cardWidth - 2*cardPadding - statBoxGap) / 2
	drawStatBox(dc, cardPadding, boxY, boxW, "Active", summary.Active)
	drawStatBox(dc, cardPadding+boxW+statBoxGap, boxY, boxW, "Total", summary.Total)

	barsY := boxY + statBoxHeight + 30
	for i, status := range summaryStatuses {
		y := barsY + float64(i)*(barHeight+barGap)
		drawStatusBar(dc, y, status, counts[status], summary.Total)
	}

	return encodeImage(dc)
}

func drawStatBox(dc *gg.Context, x, y, w float64, label string, value int) {
	dc.SetColor(statBoxColor)
	dc.DrawRoundedRectangle(x, y, w, statBoxHeight, statBoxRadius)
	dc.Fill()

	loadFont(dc, statLabelSize, false)
	dc.SetColor(cardMutedColor)
	dc.DrawStringAnchored(label, x+20, y+28, 0, 0.5)

	loadFont(dc, statFontSize, true)
	dc.SetColor(cardTextColor)
	dc.DrawStringAnchored(fmt.Sprintf("%d", value), x+20, y+72, 0, 0.5)
}

func drawStatusBar(dc *gg.Context, y float64, status model.BookingStatus, count, total int) {
	loadFont(dc, barLabelFontSize, false)
	dc.SetColor(cardTextColor)
	dc.DrawStringAnchored(statusLabel(status), cardPadding, y+barHeight/2, 0, 0.5)

	trackX := cardPadding + barLabelWidth
	trackW := cardWidth - trackX - cardPadding - 50

	dc.SetColor(barTrackColor)
	dc.DrawRoundedRectangle(trackX, y, trackW, barHeight, barBorderRadius)
	dc.Fill()

	if total > 0 && count > 0 {
		w := trackW * float64(count) / float64(total)
		if w < 2*barBorderRadius {
			w = 2 * barBorderRadius
		}
		dc.SetColor(statusColors[status])
		dc.DrawRoundedRectangle(trackX, y, w, barHeight, barBorderRadius)
		dc.Fill()
	}

	dc.SetColor(cardMutedColor)
	dc.DrawStringAnchored(fmt.Sprintf("%d", count), cardWidth-cardPadding, y+barHeight/2, 1, 0.5)
}

// statusLabel - подпись без emoji: Go-шрифты их не содержат
func statusLabel(status model.BookingStatus) string {
	switch status {
	case model.BookingStatusPending:
		return "Pending"
	case model.BookingStatusConfirmed:
		return "Confirmed"
	case model.BookingStatusCompleted:
		return "Completed"
	case model.BookingStatusCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
