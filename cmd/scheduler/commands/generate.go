package commands

import (
	"github.com/spf13/cobra"

	"github.com/rhyrak/class-scheduler/internal/csvio"
	"github.com/rhyrak/class-scheduler/internal/printer"
	"github.com/rhyrak/class-scheduler/internal/scheduler"
)

var (
	teachersFile   string
	subjectsFile   string
	classroomsFile string
	timeSlotsFile  string
	scheduleOut    string
	bookingsOut    string
	teachersOut    string
	strict         bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Load entities from CSV and generate a schedule",
	Long: `Loads teachers, subjects, classrooms and time slots from CSV files,
runs the greedy assignment once and prints the result.

Subjects that cannot be placed are reported and left out of the schedule.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&teachersFile, "teachers", "", "teachers CSV (column: name)")
	generateCmd.Flags().StringVar(&subjectsFile, "subjects", "", "subjects CSV (column: name)")
	generateCmd.Flags().StringVar(&classroomsFile, "classrooms", "", "classrooms CSV (column: room)")
	generateCmd.Flags().StringVar(&timeSlotsFile, "time-slots", "", "time slots CSV (column: time_slot, \"<start> - <end>\")")
	generateCmd.Flags().StringVarP(&scheduleOut, "output", "o", "", "write the schedule CSV here")
	generateCmd.Flags().StringVar(&bookingsOut, "bookings", "", "write classroom bookings CSV here")
	generateCmd.Flags().StringVar(&teachersOut, "teacher-loads", "", "write teacher loads CSV here")
	generateCmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero if any subject is unassigned")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	in := cfg.Input
	override(&in.TeachersFile, teachersFile)
	override(&in.SubjectsFile, subjectsFile)
	override(&in.ClassroomsFile, classroomsFile)
	override(&in.TimeSlotsFile, timeSlotsFile)
	out := cfg.Output
	override(&out.ScheduleFile, scheduleOut)
	override(&out.BookingsFile, bookingsOut)
	override(&out.TeachersFile, teachersOut)

	printer.Step("Loading entities\n")
	sess, err := csvio.LoadSession(in, cfg.DelimiterRune())
	if err != nil {
		return printer.Error("Failed to load input", err.Error(), []string{
			"Check the input paths in " + displayPath(configPath),
			"Pass --teachers, --subjects, --classrooms and --time-slots",
		})
	}
	printer.Info("%d teachers, %d subjects, %d classrooms, %d time slots\n",
		len(sess.Teachers), len(sess.Subjects), len(sess.Classrooms), len(sess.TimeSlots))

	schedule := sess.Generate(log)
	csvio.PrintSchedule(cmd.OutOrStdout(), schedule, sess.Classrooms, sess.Teachers)

	valid, msg, unassigned := scheduler.Validate(sess.Teachers, sess.Subjects, sess.Classrooms, schedule)
	printer.Info("\n%s", msg)

	exports := []struct {
		path   string
		export func(string) (string, error)
	}{
		{out.ScheduleFile, func(p string) (string, error) { return csvio.ExportSchedule(schedule, p) }},
		{out.BookingsFile, func(p string) (string, error) { return csvio.ExportBookings(sess.Classrooms, p) }},
		{out.TeachersFile, func(p string) (string, error) { return csvio.ExportTeacherLoads(sess.Teachers, p) }},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		path, err := e.export(e.path)
		if err != nil {
			return printer.Error("Failed to export", err.Error(), nil)
		}
		printer.Success("Exported output to: %s\n", path)
	}

	if len(unassigned) > 0 {
		printer.Warning("%d of %d subjects could not be placed\n", len(unassigned), len(sess.Subjects))
		if strict {
			return printer.Error("Unassigned subjects", "Run without --strict to accept a partial schedule.", nil)
		}
		return nil
	}
	if valid {
		printer.Success("All %d subjects placed\n", schedule.Len())
	}
	return nil
}

func override(dst *string, flag string) {
	if flag != "" {
		*dst = flag
	}
}
