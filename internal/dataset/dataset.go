// Package dataset is the flat-file collaborator of the pipeline: it loads
// the scraper extract, writes the cleaned dataset, and appends rows arriving
// from the streaming intake.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/gigradar/gigradar/internal/models"
)

// rawColumns is the fixed column order of the scraper extract. The scraper's
// own header names drift between runs, so raw rows are read positionally and
// this header is only written when this program creates the file.
var rawColumns = []string{
	"date_posted", "job_title", "job_url", "search_term", "payment_status",
	"client_rating_text", "client_rating_value", "client_rating_details",
	"client_total_spent", "spent", "client_location", "hourly_or_fixed",
	"job_expertise_level", "est_time_or_budget", "duration_or_budget",
	"job_description", "skill_1", "skill_2", "skill_3", "skill_4", "skill_5",
	"num_proposals", "proposals_range", "skill_6", "skill_7", "skill_8",
	"skill_9", "skill_10", "skill_11", "skill_12", "skill_13",
}

// RawColumns returns the extract column names in order.
func RawColumns() []string {
	out := make([]string, len(rawColumns))
	copy(out, rawColumns)
	return out
}

func rowToRaw(rec []string) models.RawPosting {
	return models.RawPosting{
		DatePosted:          rec[0],
		JobTitle:            rec[1],
		JobURL:              rec[2],
		SearchTerm:          rec[3],
		PaymentStatus:       rec[4],
		ClientRatingText:    rec[5],
		ClientRatingValue:   rec[6],
		ClientRatingDetails: rec[7],
		ClientTotalSpent:    rec[8],
		Spent:               rec[9],
		ClientLocation:      rec[10],
		HourlyOrFixed:       rec[11],
		JobExpertiseLevel:   rec[12],
		EstTimeOrBudget:     rec[13],
		DurationOrBudget:    rec[14],
		JobDescription:      rec[15],
		Skill1:              rec[16],
		Skill2:              rec[17],
		Skill3:              rec[18],
		Skill4:              rec[19],
		Skill5:              rec[20],
		NumProposals:        rec[21],
		ProposalsRange:      rec[22],
		Skill6:              rec[23],
		Skill7:              rec[24],
		Skill8:              rec[25],
		Skill9:              rec[26],
		Skill10:             rec[27],
		Skill11:             rec[28],
		Skill12:             rec[29],
		Skill13:             rec[30],
	}
}

func rawToRow(p models.RawPosting) []string {
	return []string{
		p.DatePosted, p.JobTitle, p.JobURL, p.SearchTerm, p.PaymentStatus,
		p.ClientRatingText, p.ClientRatingValue, p.ClientRatingDetails,
		p.ClientTotalSpent, p.Spent, p.ClientLocation, p.HourlyOrFixed,
		p.JobExpertiseLevel, p.EstTimeOrBudget, p.DurationOrBudget,
		p.JobDescription, p.Skill1, p.Skill2, p.Skill3, p.Skill4, p.Skill5,
		p.NumProposals, p.ProposalsRange, p.Skill6, p.Skill7, p.Skill8,
		p.Skill9, p.Skill10, p.Skill11, p.Skill12, p.Skill13,
	}
}

// LoadRaw reads the scraper extract. The first row is assumed to be a
// header and skipped; rows with the wrong column count are rejected because
// a positionally parsed row with shifted fields would corrupt every record
// after the shift.
func LoadRaw(path string) ([]models.RawPosting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open extract: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(rawColumns)

	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read extract header: %w", err)
	}

	var rows []models.RawPosting
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read extract row: %w", err)
		}
		rows = append(rows, rowToRaw(rec))
	}
	return rows, nil
}

// WriteRaw writes a full extract file, header included.
func WriteRaw(path string, rows []models.RawPosting) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create extract: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(rawColumns); err != nil {
		f.Close()
		return fmt.Errorf("write extract header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(rawToRow(row)); err != nil {
			f.Close()
			return fmt.Errorf("write extract row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush extract: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close extract: %w", err)
	}
	return os.Rename(tmp, path)
}

// AppendRaw appends one row to the extract, creating the file with a header
// when it does not exist yet.
func AppendRaw(path string, row models.RawPosting) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open extract: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat extract: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(rawColumns); err != nil {
			f.Close()
			return fmt.Errorf("write extract header: %w", err)
		}
	}
	if err := w.Write(rawToRow(row)); err != nil {
		f.Close()
		return fmt.Errorf("write extract row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush extract: %w", err)
	}
	return f.Close()
}

// DropDuplicates collapses rows sharing a job URL to the first occurrence,
// preserving input order. Applying it twice is the same as applying it once.
func DropDuplicates(rows []models.RawPosting) []models.RawPosting {
	seen := make(map[string]struct{}, len(rows))
	out := make([]models.RawPosting, 0, len(rows))
	for _, row := range rows {
		if _, dup := seen[row.JobURL]; dup {
			continue
		}
		seen[row.JobURL] = struct{}{}
		out = append(out, row)
	}
	return out
}

// WriteCleaned writes the normalized dataset with its typed schema.
func WriteCleaned(path string, postings []models.Posting) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cleaned dataset: %w", err)
	}

	if err := gocsv.MarshalFile(&postings, f); err != nil {
		f.Close()
		return fmt.Errorf("write cleaned dataset: %w", err)
	}
	return f.Close()
}

// LoadCleaned reads a normalized dataset written by WriteCleaned.
func LoadCleaned(path string) ([]models.Posting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cleaned dataset: %w", err)
	}
	defer f.Close()

	var postings []models.Posting
	if err := gocsv.UnmarshalFile(f, &postings); err != nil {
		return nil, fmt.Errorf("read cleaned dataset: %w", err)
	}
	return postings, nil
}

// Head returns the first n postings, or all of them when fewer exist.
func Head(postings []models.Posting, n int) []models.Posting {
	if n < 0 {
		n = 0
	}
	if n > len(postings) {
		n = len(postings)
	}
	return postings[:n]
}
