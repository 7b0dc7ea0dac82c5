package admin

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onlyfix/admin/internal/domain/car"
)

var carListView = listView[car.Car]{
	entity:  "cars",
	headers: []string{"ID", "Vehicle", "Plate", "VIN", "Color", "Owner"},
	row: func(c car.Car) []string {
		return []string{fmt.Sprint(c.ID), c.DisplayName(), c.LicensePlate, orDash(c.VIN), orDash(c.Color), c.OwnerDisplay()}
	},
}

func (a *App) newCarsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cars",
		Aliases: []string{"car"},
		Short:   "Manage customer cars",
	}
	cmd.AddCommand(
		a.newCarsListCommand(),
		a.newCarsGetCommand(),
		a.newCarsCreateCommand(),
		a.newCarsUpdateCommand(),
		a.newCarsDeleteCommand(),
	)
	return cmd
}

func (a *App) newCarsListCommand() *cobra.Command {
	var (
		page   int
		search string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := car.Filter{UserID: intFlag(cmd, "user-id"), Search: search}
			ctrl := newController[car.Car, car.Filter](a, "cars", a.client.ListCars)
			return runList(a, cmd, ctrl, filter, page, carListView)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
	cmd.Flags().Int("user-id", 0, "Only cars of this owner")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Search make, model or plate")

	return cmd
}

func (a *App) newCarsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one car",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.client.GetCar(cmd.Context(), id)
			if err != nil {
				return a.fail(err)
			}
			renderCar(cmd, c)
			return nil
		},
	}
}

func renderCar(cmd *cobra.Command, c *car.Car) {
	renderDetail(cmd.OutOrStdout(), fmt.Sprintf("Car #%d", c.ID), [][2]string{
		{"Vehicle", c.DisplayName()},
		{"Plate", c.LicensePlate},
		{"VIN", orDash(c.VIN)},
		{"Color", orDash(c.Color)},
		{"Owner", c.OwnerDisplay()},
		{"Created", formatTime(c.CreatedAt)},
	})
}

func (a *App) newCarsCreateCommand() *cobra.Command {
	var req car.CreateRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a car",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.VIN = stringFlag(cmd, "vin")
			req.Color = stringFlag(cmd, "color")
			c, err := a.client.CreateCar(cmd.Context(), req)
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.success.Render(fmt.Sprintf("Created car #%d.", c.ID)))
			renderCar(cmd, c)
			return nil
		},
	}

	cmd.Flags().IntVar(&req.UserID, "user-id", 0, "Owner user id")
	cmd.Flags().StringVar(&req.Make, "make", "", "Manufacturer")
	cmd.Flags().StringVar(&req.Model, "model", "", "Model")
	cmd.Flags().IntVar(&req.Year, "year", 0, "Model year")
	cmd.Flags().StringVar(&req.LicensePlate, "plate", "", "License plate")
	cmd.Flags().String("vin", "", "Vehicle identification number")
	cmd.Flags().String("color", "", "Color")

	return cmd
}

func (a *App) newCarsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a car",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req := car.UpdateRequest{
				UserID:       intFlag(cmd, "user-id"),
				Make:         stringFlag(cmd, "make"),
				Model:        stringFlag(cmd, "model"),
				Year:         intFlag(cmd, "year"),
				LicensePlate: stringFlag(cmd, "plate"),
				VIN:          stringFlag(cmd, "vin"),
				Color:        stringFlag(cmd, "color"),
			}
			if req == (car.UpdateRequest{}) {
				return fmt.Errorf("nothing to update")
			}
			if err := a.client.UpdateCar(cmd.Context(), id, req); err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.success.Render(fmt.Sprintf("Updated car #%d.", id)))
			return nil
		},
	}

	cmd.Flags().Int("user-id", 0, "Owner user id")
	cmd.Flags().String("make", "", "Manufacturer")
	cmd.Flags().String("model", "", "Model")
	cmd.Flags().Int("year", 0, "Model year")
	cmd.Flags().String("plate", "", "License plate")
	cmd.Flags().String("vin", "", "Vehicle identification number")
	cmd.Flags().String("color", "", "Color")

	return cmd
}

func (a *App) newCarsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a car",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.confirmAndDelete(cmd, "car", id, a.client.DeleteCar)
		},
	}
}
