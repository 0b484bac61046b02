// Command estimate считает оценку по анкете, переданной флагами, и печатает её в JSON.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/magabrotheeeer/lifeclock/internal/estimator"
	"github.com/magabrotheeeer/lifeclock/internal/http/response"
	"github.com/magabrotheeeer/lifeclock/internal/lib/validate"
	"github.com/magabrotheeeer/lifeclock/internal/models"
	"github.com/magabrotheeeer/lifeclock/internal/services/estimate"
)

const appVersion = "1.0.0"

func main() {
	if err := newRootCmd(os.Stdout, time.Now).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer, now func() time.Time) *cobra.Command {
	req := models.DummyProfile{}
	var todayStr string
	var pretty bool

	cmd := &cobra.Command{
		Use:           "estimate",
		Short:         "Predict a (fictional) death date and the free hours left",
		Long:          "Novelty estimate only. The numbers are illustrative and are not medical or actuarial advice.",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			today := now().UTC()
			if todayStr != "" {
				t, err := time.Parse(estimate.DateLayout, todayStr)
				if err != nil {
					return fmt.Errorf("invalid --today: %w", err)
				}
				today = t
			}

			if err := validate.New().Struct(req); err != nil {
				var verrs validator.ValidationErrors
				if errors.As(err, &verrs) {
					return errors.New(response.ValidationError(verrs).Error)
				}
				return err
			}

			profile, err := estimate.ParseProfile(req, today)
			if err != nil {
				return err
			}

			result := estimator.Estimate(profile, today)
			result.ID = estimate.EstimateID(profile, today)

			return writeJSON(out, result, pretty || isTerminal(out))
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.DateOfBirth, "dob", "1990-01-01", "Date of birth (YYYY-MM-DD)")
	f.StringVar(&req.Country, "country", "United States", "Country of residence")
	f.StringVar(&req.Gender, "gender", string(models.GenderMale), "Gender: Male, Female or Other")
	f.BoolVar(&req.Smokes, "smokes", false, "Smoker")
	f.IntVar(&req.CigarettesPerDay, "cigarettes", 10, "Cigarettes per day (with --smokes)")
	f.BoolVar(&req.Drinks, "drinks", false, "Consumes alcohol")
	f.StringVar(&req.AlcoholType, "alcohol-type", "Beer", "Mostly consumed alcohol: Beer, Wine, Whiskey, Tequila, Other")
	f.Float64Var(&req.WeeklyAlcoholVolumeML, "alcohol-ml", 500, "Millilitres of that drink per week (with --drinks)")
	f.Float64Var(&req.HeightCM, "height", 170, "Height in cm")
	f.Float64Var(&req.WeightKG, "weight", 70, "Weight in kg")
	f.BoolVar(&req.FamilyHeartDisease, "family-heart", false, "Family history of heart disease")
	f.BoolVar(&req.FamilyCancer, "family-cancer", false, "Family history of cancers")
	f.Float64Var(&req.SleepHoursPerDay, "sleep", 7, "Hours of sleep per day")
	f.Float64Var(&req.WorkHoursPerWeek, "work", 40, "Hours of work per week")
	f.Float64Var(&req.ExerciseHoursPerWeek, "exercise", 2, "Hours of exercise per week")
	f.StringVar(&req.DietQuality, "diet", string(models.DietPoor), "Diet quality: Poor, Moderate, Good or Excellent")
	f.StringVar(&todayStr, "today", "", "Override the current date (YYYY-MM-DD)")
	f.BoolVar(&pretty, "pretty", false, "Indent JSON output")

	cmd.SetOut(out)
	return cmd
}

func writeJSON(out io.Writer, v any, indent bool) error {
	var data []byte
	var err error
	if indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
