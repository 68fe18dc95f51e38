package misc

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// QuotesManager serves the motivational quotes shown in the app. Quotes
// are loaded once at startup from a CSV in TEXT;AUTHOR;CATEGORY format.
type QuotesManager struct {
	quotes         []*Quote
	categoryQuotes map[string][]*Quote
}

func NewQuoteManager(quotesCsvReader *csv.Reader) (*QuotesManager, error) {
	qm := &QuotesManager{
		categoryQuotes: make(map[string][]*Quote),
	}

	log.Println("reading quotes CSV ...")

	quotesCsvReader.Comma = ';'
	for {
		record, err := quotesCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) != 3 {
			return nil, fmt.Errorf("record [%s] does not have 3 elements", record)
		}

		quote := &Quote{
			Text:     record[0],
			Author:   record[1],
			Category: record[2],
		}
		qm.quotes = append(qm.quotes, quote)
		qm.categoryQuotes[quote.Category] = append(qm.categoryQuotes[quote.Category], quote)
	}

	if len(qm.quotes) == 0 {
		return nil, fmt.Errorf("quotes CSV is empty")
	}

	log.Printf("quotes CSV read %d quotes", len(qm.quotes))

	return qm, nil
}

func (qm *QuotesManager) RandomQuote() *Quote {
	return qm.quotes[rand.Intn(len(qm.quotes))]
}

// RandomQuoteForCategory falls back to the whole pool when the category
// is unknown.
func (qm *QuotesManager) RandomQuoteForCategory(category string) *Quote {
	quotes := qm.categoryQuotes[category]
	if len(quotes) == 0 {
		return qm.RandomQuote()
	}
	return quotes[rand.Intn(len(quotes))]
}
