package system

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/constants"
	"github.com/presently-app/presently/internal/models"
)

// exportPayload is the backup file format. It carries raw entities so a
// restore can rebuild state exactly, including status histories.
type exportPayload struct {
	Version   string            `json:"version"`
	People    []models.Person   `json:"people"`
	Gifts     []models.Gift     `json:"gifts"`
	Occasions []models.Occasion `json:"occasions"`
}

type ExportCmd struct {
	Output string `short:"o" help:"Output file (defaults to stdout)."`
}

func (cmd *ExportCmd) Run(ctx *cli.Context) error {
	payload := exportPayload{
		Version:   constants.Version,
		People:    ctx.App.People.List(),
		Gifts:     ctx.App.Gifts.List(),
		Occasions: ctx.App.Occasions.List(),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if cmd.Output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(cmd.Output, data, 0600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Printf("Exported %d people, %d gifts, %d occasions to %s\n",
		len(payload.People), len(payload.Gifts), len(payload.Occasions), cmd.Output)
	return nil
}

type ImportCmd struct {
	Input string `arg:"" help:"Export file to import."`
}

func (cmd *ImportCmd) Run(ctx *cli.Context) error {
	data, err := os.ReadFile(cmd.Input)
	if err != nil {
		return fmt.Errorf("reading import: %w", err)
	}

	var payload exportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("parsing import: %w", err)
	}

	ctx.App.People.Import(payload.People)
	ctx.App.Gifts.Import(payload.Gifts)
	ctx.App.Occasions.Import(payload.Occasions)

	fmt.Printf("Imported %d people, %d gifts, %d occasions\n",
		len(payload.People), len(payload.Gifts), len(payload.Occasions))
	return nil
}
