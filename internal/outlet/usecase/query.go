package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"coffee-assistant/internal/outlet"
	"coffee-assistant/pkg/llmprovider"
)

const text2SQLSystemPrompt = "You are a SQL expert. Generate only valid SQLite queries based on the given schema. Do not include any explanations or comments."

const text2SQLPromptTemplate = `CREATE TABLE outlets (
    id INTEGER PRIMARY KEY,
    name TEXT,
    area TEXT,
    city TEXT,
    address TEXT,
    opening_time TEXT,  -- HH:MM, 24h
    closing_time TEXT,  -- HH:MM, 24h
    summary TEXT,
    services TEXT       -- JSON array
);

Convert this question to SQL: "%s"

Rules:
1. Use only the tables and columns shown in the schema
2. Return a single valid SQLite SELECT query
3. For text searches, use LIKE with wildcards
4. For time comparisons, compare as strings

Example queries:
Q: "Show me outlets in Bangsar"
A: SELECT * FROM outlets WHERE address LIKE '%%Bangsar%%';

Q: "Which outlets are open after 8pm?"
A: SELECT * FROM outlets WHERE closing_time > '20:00';

Return ONLY the SQL query, nothing else.`

const fallbackSQLTemplate = "SELECT * FROM outlets WHERE name LIKE '%%%s%%' OR address LIKE '%%%s%%'"

var errText2SQLDisabled = errors.New("text-to-SQL disabled")

var (
	codeFencePattern  = regexp.MustCompile("(?s)^```(?:sql)?\\s*(.*?)\\s*```$")
	forbiddenKeywords = regexp.MustCompile(`(?i)\b(insert|update|delete|drop|alter|create|replace|attach|detach|pragma|vacuum|reindex|truncate)\b`)
	fromOutlets       = regexp.MustCompile(`(?i)\bfrom\s+outlets\b`)
)

// Query answers a natural-language question with generated SQL, falling back
// to a keyword search over name and address.
func (uc *implUseCase) Query(ctx context.Context, query string) (outlet.QueryOutput, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return outlet.QueryOutput{}, outlet.ErrEmptyQuery
	}

	if statement, err := uc.generateSQL(ctx, query); err == nil {
		results, err := uc.repo.Select(ctx, statement)
		if err == nil {
			return newQueryOutput(results, statement), nil
		}
		uc.l.Warnf(ctx, "internal.outlet.usecase.Query: generated statement failed, using keyword search: %v", err)
	} else if uc.llm != nil {
		uc.l.Warnf(ctx, "internal.outlet.usecase.Query: %v", err)
	}

	results, err := uc.repo.Search(ctx, query)
	if err != nil {
		uc.l.Errorf(ctx, "internal.outlet.usecase.Query: %v", err)
		return outlet.QueryOutput{}, fmt.Errorf("%w: %w", outlet.ErrUnavailable, err)
	}

	escaped := strings.ReplaceAll(query, "'", "''")
	return newQueryOutput(results, fmt.Sprintf(fallbackSQLTemplate, escaped, escaped)), nil
}

func (uc *implUseCase) generateSQL(ctx context.Context, query string) (string, error) {
	if uc.llm == nil {
		return "", errText2SQLDisabled
	}

	system := llmprovider.TextMessage(llmprovider.RoleSystem, text2SQLSystemPrompt)
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, fmt.Sprintf(text2SQLPromptTemplate, query))},
		Temperature:       0,
	})
	if err != nil {
		return "", err
	}

	return sanitizeSQL(resp.Content.Text())
}

// sanitizeSQL accepts exactly one SELECT statement reading the outlets table.
func sanitizeSQL(raw string) (string, error) {
	statement := strings.TrimSpace(raw)
	if m := codeFencePattern.FindStringSubmatch(statement); m != nil {
		statement = strings.TrimSpace(m[1])
	}
	statement = strings.TrimSpace(strings.TrimSuffix(statement, ";"))

	switch {
	case statement == "":
		return "", outlet.ErrUnsafeQuery
	case !strings.HasPrefix(strings.ToLower(statement), "select"):
		return "", outlet.ErrUnsafeQuery
	case strings.Contains(statement, ";"):
		return "", outlet.ErrUnsafeQuery
	case forbiddenKeywords.MatchString(statement):
		return "", outlet.ErrUnsafeQuery
	case !fromOutlets.MatchString(statement):
		return "", outlet.ErrUnsafeQuery
	}
	return statement, nil
}

func newQueryOutput(results []outlet.Outlet, statement string) outlet.QueryOutput {
	out := outlet.QueryOutput{Results: results, SQLQuery: statement}
	if len(results) == 0 {
		out.Message = outlet.MsgNoResults
	}
	return out
}
