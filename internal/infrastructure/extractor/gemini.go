package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/anikdas/ledgerbook/internal/domain"
)

const extractionPrompt = "You are a bookkeeping assistant that extracts financial transactions from free text " +
	"(notes, statements, pasted tables).\n\n" +
	"Task:\n" +
	"- Extract ALL transactions from the text below.\n" +
	"- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n" +
	"- Output a JSON array of objects.\n\n" +
	"Each object must have these fields:\n" +
	"- \"date\": string, ISO format \"YYYY-MM-DD\"\n" +
	"- \"particulars\": string, a short description\n" +
	"- \"debit\": number (0 if not a debit)\n" +
	"- \"credit\": number (0 if not a credit)\n" +
	"- \"party\": string, the account or counterparty name\n" +
	"- \"account_type\": string, one of \"Asset\", \"Liability\", \"Income\", \"Expense\", \"Equity\"\n\n" +
	"Rules:\n" +
	"- Amounts are non-negative; the direction is carried by the debit/credit split.\n" +
	"- If no transactions are present, output an empty array.\n\n" +
	"Return ONLY valid raw JSON.\n" +
	"Do NOT wrap the response in code fences.\n" +
	"Do NOT use ```json or any Markdown.\n" +
	"Output must begin with \"[\" and end with \"]\".\n\nText:\n"

// extractedRow is the wire format the model is instructed to produce.
type extractedRow struct {
	Date        string          `json:"date"`
	Particulars string          `json:"particulars"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Party       string          `json:"party"`
	AccountType string          `json:"account_type"`
}

// GeminiExtractor implements usecase.Extractor on the Gemini API.
type GeminiExtractor struct {
	client *genai.Client
	model  string
}

// NewGeminiExtractor creates a new GeminiExtractor.
func NewGeminiExtractor(ctx context.Context, apiKey, model string) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiExtractor{
		client: client,
		model:  model,
	}, nil
}

// Extract asks the model for a strict-JSON list of transactions found in
// text. Rows come back unvalidated; the caller runs them through the same
// validation as manual entry.
func (e *GeminiExtractor) Extract(ctx context.Context, text string) ([]domain.Transaction, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: extractionPrompt + text},
			},
		},
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	return parseRows(rawText)
}

func parseRows(raw string) ([]domain.Transaction, error) {
	clean := cleanModelJSON(raw)

	var rows []extractedRow
	if err := json.Unmarshal([]byte(clean), &rows); err != nil {
		return nil, fmt.Errorf("unmarshal model response: %w", err)
	}

	txs := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, domain.Transaction{
			Date:        row.Date,
			Particulars: row.Particulars,
			Debit:       row.Debit,
			Credit:      row.Credit,
			Party:       row.Party,
			AccountType: domain.AccountType(row.AccountType),
		})
	}

	return txs, nil
}

// cleanModelJSON strips Markdown fences and surrounding junk when the
// model ignores the formatting instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// Keep only the first '[' through the last ']' when extra prose
	// surrounds the array.
	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
