package main

import (
	"context"
	"encoding/base64"
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"

	"github.com/roffe/speedgauge/pkg/colors"
	"github.com/roffe/speedgauge/pkg/common"
	"github.com/roffe/speedgauge/pkg/ebus"
	"github.com/roffe/speedgauge/pkg/feed"
	"github.com/roffe/speedgauge/pkg/gauge"
	gtheme "github.com/roffe/speedgauge/pkg/theme"
	"github.com/roffe/speedgauge/pkg/widgets/speedgauge"
)

const prefGaugeState = "gaugeState"

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	a := app.NewWithID("com.roffe.speedgauge")
	a.Settings().SetTheme(&gtheme.GaugeTheme{})

	opts := gauge.DefaultOptions()
	g, err := speedgauge.New(opts)
	if err != nil {
		log.Fatal(err)
	}
	restoreState(a, g)
	a.Lifecycle().SetOnStopped(func() {
		a.Preferences().SetString(prefGaugeState, base64.StdEncoding.EncodeToString(g.SaveState()))
	})

	bus := ebus.Default()
	feed.Wire(bus)

	mw := a.NewWindow("Speed gauge")
	mw.SetContent(newLayout(mw, g, bus))
	mw.Resize(fyne.NewSize(520, 680))
	mw.ShowAndRun()
}

func restoreState(a fyne.App, g *speedgauge.SpeedGauge) {
	saved := a.Preferences().String(prefGaugeState)
	if saved == "" {
		return
	}
	b, err := base64.StdEncoding.DecodeString(saved)
	if err == nil {
		err = g.RestoreState(b)
	}
	if err != nil {
		log.Printf("restore gauge state: %v", err)
		return
	}
	log.Printf("restored progress %d", g.Progress())
}

func newLayout(w fyne.Window, g *speedgauge.SpeedGauge, bus *ebus.Bus) fyne.CanvasObject {
	stops := colors.Palette(colors.ModeNormal)

	zone := canvas.NewRectangle(stops.Interpolate(0, float64(g.MaxProgress()), float64(g.Progress())))
	zone.SetMinSize(fyne.NewSize(24, 24))
	updateZone := func(p int) {
		zone.FillColor = stops.Interpolate(0, float64(g.MaxProgress()), float64(p))
		zone.Refresh()
	}

	value := binding.NewFloat()
	value.Set(float64(g.Progress()))
	slider := widget.NewSliderWithData(0, float64(g.MaxProgress()), value)
	value.AddListener(binding.NewDataListener(func() {
		v, err := value.Get()
		if err != nil {
			return
		}
		g.SetProgress(speedgauge.Round(v))
	}))
	g.OnChanged = func(p int) {
		if v, _ := value.Get(); speedgauge.Round(v) != p {
			value.Set(float64(p))
		}
		updateZone(p)
	}

	apply := func() {
		o := g.Options()
		o.LowColor, o.MidColor, o.HighColor = stops.Low, stops.Mid, stops.High
		if err := g.Configure(o); err != nil {
			log.Printf("configure gauge: %v", err)
		}
		updateZone(g.Progress())
	}

	palette := widget.NewSelect(colors.SupportedColorBlindModes[:], func(s string) {
		stops = colors.Palette(colors.StringToColorBlindMode(s))
		apply()
	})
	palette.SetSelected(colors.Normal)

	pick := func(title string, dst *color.RGBA) *widget.Button {
		return widget.NewButton(title, func() {
			showPicker(w, *dst, func(c color.RGBA) {
				*dst = c
				apply()
			})
		})
	}

	track := widget.NewCheck("Track", func(on bool) {
		o := g.Options()
		o.HideTrack = !on
		if err := g.Configure(o); err != nil {
			log.Printf("configure gauge: %v", err)
		}
	})
	track.SetChecked(true)

	var stopFeed func()
	simulate := widget.NewCheck("Simulate", func(on bool) {
		if stopFeed != nil {
			stopFeed()
			stopFeed = nil
		}
		if on {
			stopFeed = startFeed(bus, g)
		}
	})

	controls := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Speed"), zone, slider),
		container.NewHBox(palette, pick("Low", &stops.Low), pick("Mid", &stops.Mid), pick("High", &stops.High)),
		container.NewHBox(track, simulate),
	)
	return container.NewBorder(nil, controls, nil, nil, g)
}

// startFeed drives the gauge from the simulated feed until the returned
// func is called.
func startFeed(bus *ebus.Bus, g *speedgauge.SpeedGauge) func() {
	ctx, cancel := context.WithCancel(context.Background())
	sweep := &feed.Sweep{
		Bus:      bus,
		Topic:    feed.TopicSpeedMs,
		TopSpeed: float64(g.MaxProgress()) / common.MsToKmh,
		Period:   20 * time.Second,
		Interval: 50 * time.Millisecond,
	}
	go func() {
		if err := sweep.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("feed: %v", err)
		}
	}()
	unsub := bus.SubscribeFunc(feed.TopicSpeedKmh, g.SetValue)
	return func() {
		cancel()
		unsub()
	}
}

func showPicker(w fyne.Window, initial color.RGBA, onPicked func(color.RGBA)) {
	picker := colorpicker.New(250, colorpicker.StyleHueCircle)
	picked := initial
	picker.SetOnChanged(func(c color.Color) {
		picked = color.RGBAModel.Convert(c).(color.RGBA)
	})
	var modal *widget.PopUp
	modal = widget.NewModalPopUp(container.NewVBox(
		picker,
		widget.NewButton("Apply", func() {
			modal.Hide()
			onPicked(picked)
		}),
	), w.Canvas())
	modal.Show()
}
