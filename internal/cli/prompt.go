package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rshade/ecofootprint/internal/footprint"
	"github.com/rshade/ecofootprint/internal/logging"
)

// ErrInputClosed is returned when input ends before every value was collected.
var ErrInputClosed = errors.New("input closed before all values were entered")

// Banner is printed once before the first prompt.
const Banner = "        🌱 EcoFootprint Calculator       "

// Preset holds values already supplied on the command line.
// A nil field is prompted for.
type Preset struct {
	CarKm          *float64
	BusKm          *float64
	ElectricityKwh *float64
	Diet           *footprint.DietChoice
}

// Complete reports whether nothing needs prompting.
func (p Preset) Complete() bool {
	return p.CarKm != nil && p.BusKm != nil && p.ElectricityKwh != nil && p.Diet != nil
}

// Empty reports whether no value was supplied.
func (p Preset) Empty() bool {
	return p.CarKm == nil && p.BusKm == nil && p.ElectricityKwh == nil && p.Diet == nil
}

// Inputs returns the preset values, with zero for missing ones.
func (p Preset) Inputs() footprint.Inputs {
	var in footprint.Inputs
	if p.CarKm != nil {
		in.CarKm = *p.CarKm
	}
	if p.BusKm != nil {
		in.BusKm = *p.BusKm
	}
	if p.ElectricityKwh != nil {
		in.ElectricityKwh = *p.ElectricityKwh
	}
	if p.Diet != nil {
		in.Diet = *p.Diet
	}
	return in
}

// Prompter asks for footprint inputs one line at a time and re-prompts
// until each answer passes validation.
type Prompter struct {
	out     io.Writer
	scanner *bufio.Scanner
}

// NewPrompter returns a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{out: out, scanner: bufio.NewScanner(in)}
}

// readLine returns the next line without its newline.
func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return p.scanner.Text(), nil
}

// Quantity prints message and reads a non-negative number, repeating the
// prompt after each rejected answer.
func (p *Prompter) Quantity(ctx context.Context, message string) (float64, error) {
	logger := logging.FromContext(ctx)
	for {
		fmt.Fprint(p.out, message)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		v, err := footprint.ParseQuantity(line)
		if err == nil {
			return v, nil
		}
		logger.Debug().Ctx(ctx).Err(err).Str("prompt", message).Msg("rejected quantity")
		fmt.Fprintln(p.out, footprint.UserMessage(err))
	}
}

// Diet prints the diet menu and reads a choice, repeating the menu after
// each rejected answer.
func (p *Prompter) Diet(ctx context.Context) (footprint.DietChoice, error) {
	logger := logging.FromContext(ctx)
	for {
		fmt.Fprintln(p.out, "\nSelect Your Diet Type:")
		for _, d := range footprint.Diets() {
			fmt.Fprintf(p.out, "%d) %s\n", int(d), d)
		}
		fmt.Fprint(p.out, "Enter choice (1-4): ")

		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		d, err := footprint.ParseDiet(line)
		if err == nil {
			return d, nil
		}
		logger.Debug().Ctx(ctx).Err(err).Msg("rejected diet choice")
		fmt.Fprintln(p.out, footprint.UserMessage(err))
	}
}

// Collect prompts for every value missing from preset, in the order car,
// bus/train, electricity, diet.
func (p *Prompter) Collect(ctx context.Context, preset Preset) (footprint.Inputs, error) {
	in := preset.Inputs()
	if preset.Complete() {
		return in, nil
	}

	fmt.Fprintln(p.out, Banner)

	var err error
	if preset.CarKm == nil || preset.BusKm == nil {
		fmt.Fprintln(p.out, "\n1. Transportation (Annual km)")
	}
	if preset.CarKm == nil {
		if in.CarKm, err = p.Quantity(ctx, "Car distance: "); err != nil {
			return footprint.Inputs{}, err
		}
	}
	if preset.BusKm == nil {
		if in.BusKm, err = p.Quantity(ctx, "Bus/train distance: "); err != nil {
			return footprint.Inputs{}, err
		}
	}
	if preset.ElectricityKwh == nil {
		fmt.Fprintln(p.out, "\n2. Home Energy (Annual kWh)")
		if in.ElectricityKwh, err = p.Quantity(ctx, "Electricity used: "); err != nil {
			return footprint.Inputs{}, err
		}
	}
	if preset.Diet == nil {
		if in.Diet, err = p.Diet(ctx); err != nil {
			return footprint.Inputs{}, err
		}
	}

	return in, nil
}
