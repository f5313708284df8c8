package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/navigation"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	"github.com/rakaarfi/jardin-inteligente-client/internal/viewmodel"
	"github.com/spf13/cobra"
)

func newCaptureCmd(current func() *app) *cobra.Command {
	var (
		plantID      int
		symptoms     string
		validateOnly bool
	)
	cmd := &cobra.Command{
		Use:   "capture <image>",
		Short: "Check a plant photo and diagnose it",
		Long:  "capture first checks that the photo is usable. Only when the check passes is the full diagnosis run for the given plant.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := a.requireSession(); err != nil {
				return err
			}
			vm := viewmodel.NewCaptureViewModel(a.diagnoses, a.auth)
			defer vm.Close()

			vm.SetCapturedImage(args[0])
			vm.SetTargetPlant(plantID)
			if err := vm.ValidatePhoto(cmd.Context()); err != nil {
				return err
			}

			s := vm.State().Value()
			if !validateOnly && s.Validation.IsSuccess() && s.Validation.Data.Success {
				err := vm.AnalyzePlant(cmd.Context(), optional(symptoms))
				if errors.Is(err, viewmodel.ErrAnalyzeNotReady) {
					return errors.New("a target plant is required: --plant <id>")
				}
				if err != nil {
					return err
				}
				s = vm.State().Value()
			}
			a.out.Capture(s)

			switch {
			case s.Validation.IsError(), s.Diagnosis.IsError():
				return errReported
			case !s.Validation.Data.Success:
				return errReported
			case s.Diagnosis.IsSuccess():
				token, err := navigation.Encode(navigation.ToDiagnosis(s.Diagnosis.Data))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nOpen again with: jardin diagnosis show %s\n", token)
				fmt.Fprintf(cmd.OutOrStdout(), "Share it with:   jardin community share --diagnosis %d\n", s.Diagnosis.Data.DiagnosisID)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&plantID, "plant", 0, "plant the photo belongs to")
	cmd.Flags().StringVar(&symptoms, "symptoms", "", "what you noticed, e.g. \"yellow leaves\"")
	cmd.Flags().BoolVar(&validateOnly, "check-only", false, "only run the photo check")
	return cmd
}

func newDiagnosisCmd(current func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diagnosis",
		Short: "Browse diagnoses and rate them",
	}
	cmd.AddCommand(
		newDiagnosisShowCmd(current),
		newDiagnosisHistoryCmd(current),
		newDiagnosisFeedbackCmd(current),
	)
	return cmd
}

func newDiagnosisShowCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <route-token|diagnosis-id>",
		Short: "Show one diagnosis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()

			// A numeric argument is a stored diagnosis; anything else is a route token
			// printed by capture, which carries the full diagnosis.
			if id, err := strconv.Atoi(args[0]); err == nil {
				if err := a.requireSession(); err != nil {
					return err
				}
				vm := viewmodel.NewDiagnosisDetailViewModel(a.diagnoses, a.auth, nil)
				defer vm.Close()
				vm.Load(cmd.Context(), id)
				s := vm.State().Value()
				a.out.DiagnosisDetail(s)
				return failed(s.Record.Message)
			}

			route, err := navigation.Decode(args[0])
			if err != nil {
				return err
			}
			d, err := route.Diagnosis()
			if err != nil {
				return err
			}
			vm := viewmodel.NewDiagnosisDetailViewModel(a.diagnoses, a.auth, &d)
			defer vm.Close()
			a.out.DiagnosisDetail(vm.State().Value())
			return nil
		},
	}
}

func newDiagnosisHistoryCmd(current func() *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List your past diagnoses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := a.requireSession(); err != nil {
				return err
			}
			vm := viewmodel.NewDiagnosisHistoryViewModel(a.diagnoses, a.auth)
			defer vm.Close()

			vm.Load(cmd.Context(), limit)
			s := vm.State().Value()
			a.out.History(s)
			return failed(s.Error)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", utils.DefaultHistoryLimit, "how many diagnoses to show")
	return cmd
}

func newDiagnosisFeedbackCmd(current func() *app) *cobra.Command {
	var (
		correct, incorrect bool
		actual, text       string
	)
	cmd := &cobra.Command{
		Use:   "feedback <diagnosis-id>",
		Short: "Tell us whether a diagnosis was right",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := a.requireSession(); err != nil {
				return err
			}
			id, err := parseID("diagnosis id", args[0])
			if err != nil {
				return err
			}
			vm := viewmodel.NewDiagnosisDetailViewModel(a.diagnoses, a.auth, nil)
			defer vm.Close()

			vm.Load(cmd.Context(), id)
			vm.SubmitFeedback(cmd.Context(), models.DiagnosisFeedbackInput{
				IsCorrect:        correct && !incorrect,
				CorrectDiagnosis: optional(actual),
				FeedbackText:     optional(text),
			})
			s := vm.State().Value()
			a.out.DiagnosisDetail(s)
			return failed(s.Feedback.Message)
		},
	}
	cmd.Flags().BoolVar(&correct, "correct", false, "the diagnosis was right")
	cmd.Flags().BoolVar(&incorrect, "incorrect", false, "the diagnosis was wrong")
	cmd.Flags().StringVar(&actual, "actual", "", "what the plant actually had")
	cmd.Flags().StringVar(&text, "text", "", "free-form comment")
	cmd.MarkFlagsMutuallyExclusive("correct", "incorrect")
	cmd.MarkFlagsOneRequired("correct", "incorrect")
	return cmd
}
