package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/angristan/home-tui/internal/logging"
	"github.com/angristan/home-tui/internal/models"
	"github.com/angristan/home-tui/internal/registry"
)

// Output formats of the rooms command
const (
	outputTable = "table"
	outputYAML  = "yaml"
)

// roomView is the printable form of a room
type roomView struct {
	Name        string    `yaml:"name"`
	Lights      int       `yaml:"lights"`
	On          bool      `yaml:"on"`
	Intensity   int       `yaml:"intensity"`
	AutoOn      string    `yaml:"auto_on,omitempty"`
	AutoOff     string    `yaml:"auto_off,omitempty"`
	Usage       []float64 `yaml:"usage,flow"`
	WeeklyHours float64   `yaml:"weekly_hours"`
}

func newRoomView(room *models.Room) roomView {
	v := roomView{
		Name:        room.Name,
		Lights:      room.NumOfLights,
		On:          room.IsLightOn,
		Intensity:   room.LightIntensity,
		Usage:       append([]float64(nil), room.Usage[:]...),
		WeeklyHours: room.TotalUsage(),
	}
	if room.AutoOn != nil {
		v.AutoOn = room.AutoOn.String()
	}
	if room.AutoOff != nil {
		v.AutoOff = room.AutoOff.String()
	}
	return v
}

// newRoomsCommand creates the rooms command
func newRoomsCommand(flags *globalFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List the rooms of the house",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())

			seeds, err := cfg.HouseRooms()
			if err != nil {
				return err
			}
			rooms, err := registry.New(seeds)
			if err != nil {
				return fmt.Errorf("build house: %w", err)
			}
			logger.Debug("listing rooms", "count", len(rooms.IDs()), "config", cfg.Path())

			switch output {
			case outputYAML:
				return writeRoomsYAML(cmd.OutOrStdout(), rooms.List())
			case outputTable:
				table, err := pterm.DefaultTable.
					WithHasHeader().
					WithData(roomsTableData(rooms.List())).
					Srender()
				if err != nil {
					return fmt.Errorf("render table: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			default:
				return fmt.Errorf("unknown output format %q (use %s or %s)", output, outputTable, outputYAML)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format (table, yaml)")
	return cmd
}

// roomsTableData returns the table rows for rooms, header first
func roomsTableData(rooms []*models.Room) pterm.TableData {
	data := pterm.TableData{
		{"Room", "Lights", "State", "Intensity", "Auto on", "Auto off", "Weekly hours"},
	}
	for _, room := range rooms {
		v := newRoomView(room)
		state := "off"
		if v.On {
			state = "on"
		}
		data = append(data, []string{
			room.DisplayName(),
			strconv.Itoa(v.Lights),
			state,
			fmt.Sprintf("%d/10", v.Intensity),
			orDash(v.AutoOn),
			orDash(v.AutoOff),
			strconv.FormatFloat(v.WeeklyHours, 'f', -1, 64),
		})
	}
	return data
}

func writeRoomsYAML(w io.Writer, rooms []*models.Room) error {
	views := make([]roomView, 0, len(rooms))
	for _, room := range rooms {
		views = append(views, newRoomView(room))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]roomView{"rooms": views}); err != nil {
		return fmt.Errorf("encode rooms: %w", err)
	}
	return enc.Close()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
