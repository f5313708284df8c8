package main

import (
	"context"

	"github.com/rakaarfi/jardin-inteligente-client/internal/viewmodel"
	"github.com/spf13/cobra"
)

func newGardenCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "garden",
		Short: "List your plants and your progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := a.requireSession(); err != nil {
				return err
			}
			vm := viewmodel.NewGardenViewModel(a.plants, a.auth)
			defer vm.Close()

			vm.Load(cmd.Context())
			s := vm.State().Value()
			a.out.Garden(s)
			return failed(s.Error)
		},
	}
}

func newPlantCmd(current func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plant",
		Short: "Add, inspect and look after one plant",
	}
	cmd.AddCommand(
		newPlantShowCmd(current),
		newPlantAddCmd(current),
		newPlantCareCmd(current, "water", "Record a watering", (*viewmodel.PlantDetailViewModel).Water),
		newPlantCareCmd(current, "fertilize", "Record a fertilization", (*viewmodel.PlantDetailViewModel).Fertilize),
		newPlantDeleteCmd(current),
	)
	return cmd
}

// plantDetail builds the detail view-model for the plant id in args[0].
func plantDetail(a *app, args []string) (*viewmodel.PlantDetailViewModel, error) {
	if err := a.requireSession(); err != nil {
		return nil, err
	}
	id, err := parseID("plant id", args[0])
	if err != nil {
		return nil, err
	}
	return viewmodel.NewPlantDetailViewModel(a.plants, a.diagnoses, a.auth, id), nil
}

func newPlantShowCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <plant-id>",
		Short: "Show a plant and its diagnoses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			vm, err := plantDetail(a, args)
			if err != nil {
				return err
			}
			defer vm.Close()

			vm.Load(cmd.Context())
			s := vm.State().Value()
			a.out.PlantDetail(s)
			return failed(s.Error)
		},
	}
}

func newPlantCareCmd(current func() *app, use, short string, action func(*viewmodel.PlantDetailViewModel, context.Context)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <plant-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			vm, err := plantDetail(a, args)
			if err != nil {
				return err
			}
			defer vm.Close()

			action(vm, cmd.Context())
			s := vm.State().Value()
			a.out.PlantDetail(s)
			return failed(s.Error)
		},
	}
}

func newPlantDeleteCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <plant-id>",
		Short: "Remove a plant from your garden",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			vm, err := plantDetail(a, args)
			if err != nil {
				return err
			}
			defer vm.Close()

			vm.Delete(cmd.Context())
			s := vm.State().Value()
			a.out.PlantDetail(s)
			return failed(s.Error)
		},
	}
}

func newPlantAddCmd(current func() *app) *cobra.Command {
	var (
		name, species, location string
		diagnosisID             int
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a plant to your garden",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := a.requireSession(); err != nil {
				return err
			}
			vm := viewmodel.NewAddPlantViewModel(a.plants, a.auth)
			defer vm.Close()

			in := viewmodel.AddPlantInput{
				Name:     name,
				Species:  optional(species),
				Location: optional(location),
			}
			if diagnosisID > 0 {
				in.DiagnosisID = &diagnosisID
			}
			vm.AddPlant(cmd.Context(), in)

			s := vm.State().Value()
			a.out.AddPlant(s)
			return failed(s.Message)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "plant name")
	cmd.Flags().StringVar(&species, "species", "", "species, e.g. Monstera deliciosa")
	cmd.Flags().StringVar(&location, "location", "", "where the plant lives")
	cmd.Flags().IntVar(&diagnosisID, "diagnosis-id", 0, "seed the plant from this diagnosis")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
