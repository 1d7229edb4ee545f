//
// Tencent is pleased to support the open source community by making trpc-planeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-planeval-go is licensed under the Apache License Version 2.0.
//
//

// Package udf provides the stateless conversion helpers sitting at the
// pipeline boundary: fetching raw bytes from a URL, taking a sheet
// inventory of a spreadsheet container and expanding its sheets into
// row-oriented table records. The harness itself never calls these; they
// feed the upstream pipeline that produces run outputs.
package udf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"trpc.group/trpc-go/trpc-planeval-go/log"
)

// MaxRows caps the number of data rows kept per sheet.
const MaxRows = 100

// File wraps raw fetched bytes with filename and fetch-time metadata.
type File struct {
	// Filename is the last segment of the source URL.
	Filename string
	// Timestamp is the fetch time in RFC 3339 form.
	Timestamp string
	// Contents are the fetched bytes. Empty when the fetch failed.
	Contents []byte
}

// XLSInfo is the sheet inventory of a spreadsheet container.
type XLSInfo struct {
	// NumberSheets is the sheet count.
	NumberSheets int
	// SheetNames lists the sheets in workbook order.
	SheetNames []string
}

// Table is one sheet expanded into row-oriented records.
type Table struct {
	// Rows are the data rows, each flattened to a single comma-joined
	// string, truncated to MaxRows.
	Rows []string
	// Header lists the column names from the sheet's first row.
	Header []string
	// Filename is the originating file name.
	Filename string
	// Name identifies the table: "<base filename>_<sheet name>".
	Name string
}

// URLToFile fetches the bytes behind url and wraps them with metadata. A
// failed fetch logs the fault and yields a File with empty contents, so a
// dead link degrades the data rather than the pipeline.
func URLToFile(ctx context.Context, url string) *File {
	segments := strings.Split(url, "/")
	file := &File{
		Filename:  segments[len(segments)-1],
		Timestamp: time.Now().Format(time.RFC3339),
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Errorf("fetch %s: %v", url, err)
		return file
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Errorf("fetch %s: %v", url, err)
		return file
	}
	defer resp.Body.Close()
	contents, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("fetch %s: %v", url, err)
		return file
	}
	file.Contents = contents
	return file
}

// FileToXLS parses spreadsheet container bytes into a sheet inventory.
// Unlike the other helpers this one fails hard: a file that is not a
// spreadsheet cannot be inventoried.
func FileToXLS(contents []byte) (*XLSInfo, error) {
	f, err := excelize.OpenReader(bytes.NewReader(contents))
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()
	names := f.GetSheetList()
	return &XLSInfo{NumberSheets: len(names), SheetNames: names}, nil
}

// XLSToTables expands every sheet of a spreadsheet into a Table record.
// Unreadable containers yield no tables and unreadable sheets are skipped,
// both with a logged notice.
func XLSToTables(contents []byte, filename string) []*Table {
	f, err := excelize.OpenReader(bytes.NewReader(contents))
	if err != nil {
		log.Errorf("open spreadsheet %s: %v", filename, err)
		return nil
	}
	defer f.Close()

	var tables []*Table
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			log.Warnf("skipping sheet %s of %s: %v", sheet, filename, err)
			continue
		}
		table := &Table{
			Filename: filename,
			Name:     path.Base(filename) + "_" + sheet,
		}
		if len(rows) > 0 {
			table.Header = rows[0]
			rows = rows[1:]
		}
		if len(rows) > MaxRows {
			rows = rows[:MaxRows]
		}
		for _, row := range rows {
			table.Rows = append(table.Rows, strings.Join(row, ", "))
		}
		tables = append(tables, table)
	}
	return tables
}
