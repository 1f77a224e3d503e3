package page

import (
	"image"
	"strings"

	"github.com/iburimskiy/electric-background/internal/config"
)

const (
	Tagline     = "UNDER RENOVATION"
	Headline    = "LET'S SHAPE THE FUTURE TOGETHER"
	Subtitle    = "We are currently working on something amazing. Enter your email below to be the first to know when we launch."
	Placeholder = "Enter your email here"
	ButtonLabel = "SUBMIT"
	Copyright   = "(c) United Sands. All rights reserved."
)

// Layout places the page content for one window size. Content is centered
// vertically above the footer; the form sits side by side when it fits.
type Layout struct {
	Width, Height int

	Logo          image.Rectangle
	Tagline       image.Rectangle
	Headline      image.Rectangle
	HeadlineScale int
	Subtitle      image.Rectangle // the safe zone
	SubtitleLines []string
	Input         image.Rectangle // the mute zone
	Button        image.Rectangle
	Footer        image.Rectangle
}

func NewLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}
	inner := max(width-2*config.ContentPadding, config.GlyphWidth)

	l.HeadlineScale = config.HeadlineScale
	if textWidth(Headline, l.HeadlineScale) > inner {
		l.HeadlineScale = 1
	}
	l.SubtitleLines = wrap(Subtitle, min(config.SubtitleColumns, inner/config.GlyphWidth))

	formWidth := min(config.FormWidth, inner)
	stacked := formWidth < config.FormStackWidth
	formHeight := config.InputHeight
	if stacked {
		formHeight = 2*config.InputHeight + config.FormGap
	}

	headlineHeight := config.GlyphHeight * l.HeadlineScale
	subtitleHeight := config.GlyphHeight * len(l.SubtitleLines)
	total := config.LogoSize + config.SectionGap +
		config.GlyphHeight + config.FormGap +
		headlineHeight + config.SectionGap +
		subtitleHeight + config.SubtitleGap +
		formHeight

	available := height - config.FooterHeight
	y := max(config.ContentPadding, (available-total)/2)
	cx := width / 2

	l.Logo = centered(cx, y, config.LogoSize, config.LogoSize)
	y += config.LogoSize + config.SectionGap

	l.Tagline = centered(cx, y, textWidth(Tagline, 1), config.GlyphHeight)
	y += config.GlyphHeight + config.FormGap

	l.Headline = centered(cx, y, textWidth(Headline, l.HeadlineScale), headlineHeight)
	y += headlineHeight + config.SectionGap

	subtitleWidth := 0
	for _, line := range l.SubtitleLines {
		subtitleWidth = max(subtitleWidth, textWidth(line, 1))
	}
	l.Subtitle = centered(cx, y, subtitleWidth, subtitleHeight)
	y += subtitleHeight + config.SubtitleGap

	form := centered(cx, y, formWidth, formHeight)
	if stacked {
		l.Input = image.Rect(form.Min.X, form.Min.Y, form.Max.X, form.Min.Y+config.InputHeight)
		l.Button = image.Rect(form.Min.X, form.Max.Y-config.InputHeight, form.Max.X, form.Max.Y)
	} else {
		l.Input = image.Rect(form.Min.X, form.Min.Y, form.Max.X-config.ButtonWidth-config.FormGap, form.Max.Y)
		l.Button = image.Rect(form.Max.X-config.ButtonWidth, form.Min.Y, form.Max.X, form.Max.Y)
	}

	footerTop := max(height-config.FooterHeight, form.Max.Y+config.SectionGap)
	l.Footer = centered(cx, footerTop+(config.FooterHeight-config.GlyphHeight)/2, textWidth(Copyright, 1), config.GlyphHeight)
	return l
}

func centered(cx, top, width, height int) image.Rectangle {
	return image.Rect(cx-width/2, top, cx-width/2+width, top+height)
}

func textWidth(s string, scale int) int {
	return len(s) * config.GlyphWidth * scale
}

// wrap breaks s into lines of at most cols characters at word boundaries.
// Words longer than cols get a line of their own.
func wrap(s string, cols int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if cols < 1 {
		cols = 1
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > cols {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
