package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"talent-stake/domain/dto"
	"talent-stake/domain/entities"
)

const tableTimeLayout = "2006-01-02 15:04:05"

// printTable writes jobs, referrals and events as aligned columns. Anything
// else is shown as one field per row.
func printTable(out io.Writer, data interface{}) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	var err error
	switch v := data.(type) {
	case *entities.Job:
		err = writeJobs(w, []entities.Job{*v})
	case []entities.Job:
		err = writeJobs(w, v)
	case *dto.JobView:
		err = writeJobView(w, v)
	case *entities.Referral:
		writeReferrals(w, []entities.Referral{*v})
	case []entities.Referral:
		writeReferrals(w, v)
	case []entities.LedgerEvent:
		writeEvents(w, v)
	default:
		err = writeFields(w, data)
	}
	if err != nil {
		return err
	}
	return w.Flush()
}

func writeJobs(w io.Writer, jobs []entities.Job) error {
	fmt.Fprintln(w, "ID\tState\tTitle\tCreator\tBounty\tSpam\tPot\tCreated")
	for i := range jobs {
		job := &jobs[i]
		pot, err := job.TotalPot()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			job.ID,
			job.State,
			truncate(job.Title, 32),
			job.Creator.Hex(),
			job.InitialBounty,
			job.AccumulatedSpam,
			pot,
			job.CreatedAt.UTC().Format(tableTimeLayout),
		)
	}
	return nil
}

func writeJobView(w io.Writer, view *dto.JobView) error {
	if view.Job != nil {
		if err := writeJobs(w, []entities.Job{*view.Job}); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	writeReferrals(w, view.Referrals)

	states := make([]string, 0, len(view.Summary.ByState))
	for state, n := range view.Summary.ByState {
		states = append(states, fmt.Sprintf("%s=%d", state, n))
	}
	sort.Strings(states)
	fmt.Fprintf(w, "\nReferrals: %d %v\n", view.Summary.Total, states)
	return nil
}

func writeReferrals(w io.Writer, referrals []entities.Referral) {
	fmt.Fprintln(w, "ID\tJob\tState\tReferrer\tCandidate\tStake\tDecided")
	for i := range referrals {
		r := &referrals[i]
		candidate := "-"
		if r.Candidate != nil {
			candidate = r.Candidate.Hex()
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.JobID,
			r.State,
			r.Referrer.Hex(),
			candidate,
			r.StakeAmount,
			formatOptionalTime(r.DecidedAt),
		)
	}
}

func writeEvents(w io.Writer, events []entities.LedgerEvent) {
	fmt.Fprintln(w, "Seq\tType\tJob\tReferral\tActor\tOccurred\tProjected")
	for i := range events {
		e := &events[i]
		referral := "-"
		if e.ReferralID != 0 {
			referral = fmt.Sprintf("%d", e.ReferralID)
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			e.Sequence,
			e.Type,
			e.JobID,
			referral,
			e.Actor.Hex(),
			e.OccurredAt.UTC().Format(tableTimeLayout),
			formatOptionalTime(e.ProjectedAt),
		)
	}
}

// writeFields lists the top-level fields of data in key order. Nested values
// are shown as compact JSON.
func writeFields(w io.Writer, data interface{}) error {
	generic, err := toGeneric(data)
	if err != nil {
		return err
	}

	fields, ok := generic.(map[string]interface{})
	if !ok {
		fmt.Fprintln(w, formatCell(generic))
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(w, "Field\tValue")
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%s\n", k, formatCell(fields[k]))
	}
	return nil
}

func formatCell(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return "-"
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case map[string]interface{}, []interface{}:
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(raw)
	default:
		return fmt.Sprintf("%v", value)
	}
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(tableTimeLayout)
}

// truncate shortens s to at most max runes, marking the cut with "...".
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
