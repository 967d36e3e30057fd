// Package notation parses board coordinates and algebraic square names into
// chess.Pos values, reporting failures as errors.ParseError.
package notation

import (
	"fmt"
	"unicode/utf8"

	"github.com/lgbarn/packed-board-go/internal/chess"
	"github.com/lgbarn/packed-board-go/internal/config"
	"github.com/lgbarn/packed-board-go/internal/errors"
)

// Parser converts coordinates and square names to positions according to
// its configuration. A Parser is safe for concurrent use if its log writer is.
type Parser struct {
	cfg *config.Config
}

// NewParser returns a Parser for cfg. A nil cfg uses config.NewConfig().
func NewParser(cfg *config.Config) (*Parser, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "notation")
	}
	c := *cfg
	return &Parser{cfg: &c}, nil
}

// Mode returns the validation mode in use.
func (p *Parser) Mode() config.ValidationMode {
	return p.cfg.Validation
}

// Parse parses a square name such as "e4": one file letter followed by one
// decimal digit.
func (p *Parser) Parse(s string) (chess.Pos, error) {
	file, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return 0, p.reject(&errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Expected: "file letter and rank digit",
			Got:      "empty input",
		})
	}
	rest := s[size:]
	if len(rest) != 1 {
		return 0, p.reject(&errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Expected: "file letter and rank digit",
			Got:      characters(utf8.RuneCountInString(s)),
		})
	}
	if rest[0] < '0' || rest[0] > '9' {
		return 0, p.reject(&errors.ParseError{
			Err:      errors.ErrInvalidRank,
			Input:    s,
			Column:   2,
			Expected: "rank digit",
			Got:      fmt.Sprintf("%q", rest),
		})
	}
	pos, perr := p.fromAlgebraic(file, rest[0]-'0', s)
	if perr != nil {
		return 0, p.reject(perr)
	}
	return pos, nil
}

// FromAlgebraic converts a file letter and rank number to a position.
func (p *Parser) FromAlgebraic(file rune, rank uint8) (chess.Pos, error) {
	pos, perr := p.fromAlgebraic(file, rank, "")
	if perr != nil {
		return 0, p.reject(perr)
	}
	return pos, nil
}

// FromCoords converts zero-based (x, y) coordinates to a position.
func (p *Parser) FromCoords(x, y uint8) (chess.Pos, error) {
	pos, perr := p.fromCoords(x, y)
	if perr != nil {
		return 0, p.reject(perr)
	}
	return pos, nil
}

func (p *Parser) fromAlgebraic(file rune, rank uint8, input string) (chess.Pos, *errors.ParseError) {
	x, ok := p.fileIndex(file)
	if !ok {
		return 0, &errors.ParseError{
			Err:      errors.ErrInvalidFile,
			Input:    input,
			Column:   column(input, 1),
			Expected: "file a-h",
			Got:      fmt.Sprintf("%q", file),
		}
	}

	if p.cfg.Validation == config.Legacy {
		if rank >= 1 && rank <= chess.BoardSize {
			return 0, &errors.ParseError{
				Err:    errors.ErrInvalidRank,
				Input:  input,
				Column: column(input, 2),
				Got:    fmt.Sprintf("rank %d (rejected in legacy mode)", rank),
			}
		}
		// Rank 0 wraps to y = 255. x is always on the board here, so the
		// legacy coordinate check accepts.
		return p.fromCoords(x, rank-1)
	}

	if rank == 0 || rank > chess.BoardSize {
		return 0, &errors.ParseError{
			Err:      errors.ErrInvalidRank,
			Input:    input,
			Column:   column(input, 2),
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%d", rank),
		}
	}
	return chess.PosFromRawCoords(x, rank-1), nil
}

func (p *Parser) fromCoords(x, y uint8) (chess.Pos, *errors.ParseError) {
	if pos, ok := chess.PosFromCoords(x, y); ok {
		return pos, nil
	}
	if p.cfg.Validation == config.Legacy && (x < chess.BoardSize || y < chess.BoardSize) {
		pos := chess.Pos(x<<4 | y)
		if p.cfg.Verbosity > 0 {
			fmt.Fprintf(p.cfg.LogFile, "Legacy validation accepted off-board coordinates (%d, %d) as %#x.\n",
				x, y, uint8(pos))
		}
		return pos, nil
	}
	return 0, &errors.ParseError{
		Err:      errors.ErrOutOfRange,
		Expected: "coordinates in [0,8)",
		Got:      fmt.Sprintf("(%d, %d)", x, y),
	}
}

func (p *Parser) fileIndex(file rune) (uint8, bool) {
	if !p.cfg.CaseInsensitiveFiles && file >= 'A' && file <= 'H' {
		return 0, false
	}
	return chess.FileIndex(file)
}

func (p *Parser) reject(err *errors.ParseError) error {
	if p.cfg.Verbosity > 1 {
		fmt.Fprintf(p.cfg.LogFile, "Rejected square: %v.\n", err)
	}
	return err
}

func characters(n int) string {
	if n == 1 {
		return "1 character"
	}
	return fmt.Sprintf("%d characters", n)
}

// column returns col when there is input text to point into, else 0.
func column(input string, col int) int {
	if input == "" {
		return 0
	}
	return col
}
