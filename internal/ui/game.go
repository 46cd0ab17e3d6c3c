package ui

import (
	"log"
	"runtime"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nullmove/chessmcts/internal/board"
	"github.com/nullmove/chessmcts/internal/mcts"
	"github.com/nullmove/chessmcts/internal/storage"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640 // Match board height to eliminate unused space
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by widgets and modals.
var UIScale float64 = 1.0

// GameMode represents the current game mode.
type GameMode int

const (
	ModeHumanVsHuman GameMode = iota
	ModeHumanVsComputer
)

// Difficulty represents how many playouts the searcher spends per move.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// iterations returns the playout budget for a difficulty level.
func (d Difficulty) iterations() int {
	switch d {
	case DifficultyEasy:
		return 300
	case DifficultyHard:
		return 4000
	default:
		return 1200
	}
}

// searchResult is what a background search goroutine reports back.
type searchResult struct {
	move  board.Move
	stats mcts.Stats
}

// Game implements ebiten.Game interface.
type Game struct {
	// Core game state
	position     *board.Position
	moveHistory  []board.Move
	sanHistory   []string
	positionKeys []string // repetition-detection keys (board+side+castling+ep)

	// UI state
	selectedSquare board.Square
	legalMoves     *board.MoveList
	dragging       bool
	dragPiece      board.Piece
	dragSquare     board.Square
	lastMove       board.Move

	// Game settings
	mode        GameMode
	difficulty  Difficulty
	quality     storage.SearchQuality
	username    string
	playerColor board.Color // Which color the human plays (default: White)

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager

	// Modals
	settingsModal *SettingsModal
	welcomeScreen *WelcomeScreen

	// Visual effects
	glass *GlassEffect

	// Search
	searching   bool
	searchCh    chan searchResult
	lastStats   mcts.Stats
	hasLastStat bool

	// Game state
	gameOver   bool
	gameResult string

	// HiDPI scaling
	scale float64
}

// NewGame creates a new chess game.
func NewGame() *Game {
	g := &Game{
		position:       board.NewPosition(),
		selectedSquare: board.NoSquare,
		mode:           ModeHumanVsComputer,
		difficulty:     DifficultyMedium,
		quality:        storage.QualityStandard,
		username:       "Player",
		playerColor:    board.White, // Human plays White by default
		renderer:       NewRenderer(BoardSize, SquareSize),
		input:          NewInputHandler(),
		searchCh:       make(chan searchResult, 1),
	}

	// Initialize storage
	var err error
	g.storage, err = storage.NewStorage()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}

	// Load preferences
	g.loadPreferences()

	g.panel = NewPanel(g)
	g.feedback = NewFeedbackManager()
	g.glass = NewGlassEffect()

	// Initialize modals
	g.settingsModal = NewSettingsModal()
	g.welcomeScreen = NewWelcomeScreen()

	// Initialize repetition history with starting position
	g.positionKeys = []string{repetitionKey(g.position)}

	// Check for first launch
	g.checkFirstLaunch()

	return g
}

// repetitionKey reduces a position to the fields that matter for threefold
// repetition: piece placement, side to move, castling rights, en passant
// target. Halfmove clock and fullmove number are deliberately excluded.
func repetitionKey(pos *board.Position) string {
	fields := strings.Fields(pos.ToFEN())
	if len(fields) < 4 {
		return pos.ToFEN()
	}
	return strings.Join(fields[:4], " ")
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		g.prefs = storage.DefaultPreferences()
	}

	// Apply preferences
	g.username = g.prefs.Username
	g.difficulty = Difficulty(g.prefs.Difficulty)
	g.quality = g.prefs.SearchQuality
	g.mode = GameMode(g.prefs.GameMode)

	// Apply player color (convert from storage.PlayerColor to board.Color)
	if g.prefs.PlayerColor == storage.ColorBlack {
		g.playerColor = board.Black
		g.renderer.SetFlipped(true)
	} else {
		g.playerColor = board.White
		g.renderer.SetFlipped(false)
	}
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	g.prefs.Username = g.username
	g.prefs.Difficulty = storage.Difficulty(g.difficulty)
	g.prefs.SearchQuality = g.quality
	g.prefs.GameMode = storage.GameMode(g.mode)

	// Convert board.Color to storage.PlayerColor
	if g.playerColor == board.Black {
		g.prefs.PlayerColor = storage.ColorBlack
	} else {
		g.prefs.PlayerColor = storage.ColorWhite
	}

	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// checkFirstLaunch shows welcome screen on first launch.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}

	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: Failed to check first launch: %v", err)
		return
	}

	if isFirst {
		g.welcomeScreen.Show(func(name string, quality storage.SearchQuality) {
			g.username = name
			g.prefs.Username = name
			g.quality = quality

			if err := g.storage.MarkFirstLaunchComplete(); err != nil {
				log.Printf("Warning: Failed to mark first launch complete: %v", err)
			}

			g.savePreferences()
		})
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	// Update input
	g.input.Update()

	// Update feedback animations
	g.feedback.Update()

	// Update glass effect animation
	g.glass.Update()

	// Handle welcome screen first (blocks other input)
	if g.welcomeScreen.IsVisible() {
		g.welcomeScreen.Update(g.input)
		g.updateCursor()
		return nil
	}

	// Handle settings modal (blocks other input)
	if g.settingsModal.IsVisible() {
		g.settingsModal.Update(g.input)
		g.updateCursor()
		return nil
	}

	// Handle panel interactions
	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil // Panel handled the input
	}

	// Handle board interactions
	g.handleBoardInput()

	// Check for search completion
	g.checkSearchResult()

	// Update cursor based on hover state
	g.updateCursor()

	return nil
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	anyHovered := false

	// Check all interactive elements
	if g.welcomeScreen.IsVisible() {
		anyHovered = g.welcomeScreen.AnyButtonHovered()
	} else if g.settingsModal.IsVisible() {
		anyHovered = g.settingsModal.AnyButtonHovered()
	}

	if anyHovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	// Set HiDPI scale factor for all rendering components
	g.renderer.SetScale(g.scale)

	// Clear background
	screen.Fill(g.renderer.Theme().Background)

	// Draw board
	g.renderer.DrawBoard(screen)

	// Draw highlights for check
	if g.position.InCheck() {
		g.renderer.DrawCheck(screen, g.position.KingSquare[g.position.SideToMove])
	}

	// Draw highlights (last move, selection, legal moves)
	g.renderer.DrawHighlights(screen, g.selectedSquare, g.legalMoves, g.lastMove)

	// Draw pieces with shake animations
	g.renderer.DrawPiecesWithAnimations(screen, g.position, g.dragging, g.dragSquare, g.feedback.Animations())

	// Draw dragged piece
	if g.dragging {
		mx, my := g.input.MousePosition()
		g.renderer.DrawDraggedPiece(screen, g.dragPiece, mx, my)
	}

	// Draw feedback overlays (animations, toasts)
	g.feedback.Draw(screen, g.renderer)

	// Draw panel
	g.panel.Draw(screen, g.renderer)

	// Draw modals on top (with glass effect)
	g.settingsModal.Draw(screen, g.glass)
	g.welcomeScreen.Draw(screen, g.glass)
}

// Layout returns the game's screen dimensions, scaled for HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale
	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// handleBoardInput processes mouse interactions with the board.
func (g *Game) handleBoardInput() {
	if g.gameOver {
		return
	}

	// Don't allow moves while the searcher is thinking
	if g.searching {
		return
	}

	// Only allow moves for human player in human vs computer mode
	if g.mode == ModeHumanVsComputer && g.position.SideToMove != g.playerColor {
		return
	}

	mx, my := g.input.MousePosition()

	// Check if mouse is on the board
	if mx >= BoardSize || my >= BoardSize {
		return
	}

	// Handle mouse press
	if g.input.IsLeftJustPressed() {
		sq := g.renderer.ScreenToSquare(mx, my)
		if sq == board.NoSquare {
			return
		}

		piece := g.position.PieceAt(sq)

		// If clicking on our own piece, select it
		if piece != board.NoPiece && piece.Color() == g.position.SideToMove {
			g.selectSquare(sq)
			g.startDrag(sq)
			return
		}

		// If we have a selection and clicking on a legal move target, make the move
		if g.selectedSquare != board.NoSquare && g.legalMoves != nil {
			move := g.findMove(g.selectedSquare, sq)
			if move != board.NoMove {
				g.makeMove(move)
				return
			}
		}

		// Clear selection
		g.clearSelection()
	}

	// Handle dragging
	if g.dragging && g.input.IsLeftJustReleased() {
		g.handleDragRelease(mx, my)
	}
}

// selectSquare selects a square and generates legal moves from it.
func (g *Game) selectSquare(sq board.Square) {
	g.selectedSquare = sq
	g.legalMoves = g.getLegalMovesFrom(sq)
}

// clearSelection clears the current selection.
func (g *Game) clearSelection() {
	g.selectedSquare = board.NoSquare
	g.legalMoves = nil
	g.dragging = false
	g.dragPiece = board.NoPiece
	g.dragSquare = board.NoSquare
}

// startDrag begins dragging a piece.
func (g *Game) startDrag(sq board.Square) {
	g.dragging = true
	g.dragPiece = g.position.PieceAt(sq)
	g.dragSquare = sq
}

// handleDragRelease handles releasing a dragged piece.
func (g *Game) handleDragRelease(mx, my int) {
	targetSq := g.renderer.ScreenToSquare(mx, my)

	if targetSq != board.NoSquare && g.legalMoves != nil {
		move := g.findMove(g.dragSquare, targetSq)
		if move != board.NoMove {
			g.makeMove(move)
			return
		}

		// Move was attempted but not valid - determine why and show feedback
		if g.dragSquare != targetSq {
			reason := g.determineInvalidMoveReason(g.dragSquare, targetSq)
			g.feedback.OnInvalidMove(g.dragSquare, targetSq, reason)
		}
	}

	// Invalid drop - clear selection
	g.clearSelection()
}

// determineInvalidMoveReason analyzes why a move from src to dst is invalid.
func (g *Game) determineInvalidMoveReason(src, dst board.Square) InvalidMoveReason {
	piece := g.position.PieceAt(src)
	if piece == board.NoPiece {
		return ReasonUnknown
	}

	// Check if destination has own piece
	destPiece := g.position.PieceAt(dst)
	if destPiece != board.NoPiece && destPiece.Color() == piece.Color() {
		return ReasonBlockedByOwnPiece
	}

	// A move that isn't in the legal set but starts from the selected piece
	// either leaves its own king in check or isn't a movement pattern the
	// piece can make at all; AllLegalMoves already filtered the former out.
	for _, m := range g.position.AllLegalMoves() {
		if m.From == src {
			return ReasonWouldLeaveKingInCheck
		}
	}

	return ReasonInvalidPieceMovement
}

// getLegalMovesFrom returns all legal moves from the given square.
func (g *Game) getLegalMovesFrom(sq board.Square) *board.MoveList {
	filtered := &board.MoveList{}
	for _, move := range g.position.LegalMoves(sq) {
		filtered.Add(move)
	}
	return filtered
}

// findMove finds a legal move from src to dst.
func (g *Game) findMove(src, dst board.Square) board.Move {
	if g.legalMoves == nil {
		return board.NoMove
	}

	for i := 0; i < g.legalMoves.Len(); i++ {
		move := g.legalMoves.Get(i)
		if move.From == src && move.To == dst {
			// Promotion defaults to queen; the UI doesn't offer underpromotion.
			if move.IsPromotion() {
				for j := 0; j < g.legalMoves.Len(); j++ {
					m := g.legalMoves.Get(j)
					if m.From == src && m.To == dst && m.Kind.PromotionType() == board.Queen {
						return m
					}
				}
			}
			return move
		}

		// Handle castling: allow dragging King to Rook square.
		// Users naturally castle by moving King to Rook, but internal moves use
		// the king's own destination square.
		if move.Kind.IsCastle() && move.From == src {
			if (src == board.E1 && dst == board.H1 && move.To == board.G1) ||
				(src == board.E8 && dst == board.H8 && move.To == board.G8) {
				return move
			}
			if (src == board.E1 && dst == board.A1 && move.To == board.C1) ||
				(src == board.E8 && dst == board.A8 && move.To == board.C8) {
				return move
			}
		}
	}

	return board.NoMove
}

// makeMove applies a move to the game.
func (g *Game) makeMove(m board.Move) {
	isCapture := m.IsCapture()
	isCastling := m.Kind.IsCastle()

	// Record SAN before making move
	san := m.ToSAN(g.position)
	g.sanHistory = append(g.sanHistory, san)

	// Make the move
	g.position.MakeMove(m)
	g.moveHistory = append(g.moveHistory, m)
	g.lastMove = m

	// Record repetition key
	g.positionKeys = append(g.positionKeys, repetitionKey(g.position))

	// Clear selection
	g.clearSelection()

	// Play move sound (before checking game end, which may play its own sound)
	g.feedback.OnMoveMade(isCapture, isCastling)

	// Check for game end
	g.checkGameEnd()

	// Start search if it's computer's turn
	if !g.gameOver && g.mode == ModeHumanVsComputer && g.position.SideToMove != g.playerColor {
		g.startSearch()
	}
}

// checkGameEnd checks if the game is over.
func (g *Game) checkGameEnd() {
	if g.position.IsCheckmate() {
		g.gameOver = true
		if g.position.SideToMove == board.White {
			g.gameResult = "Black wins by checkmate!"
			g.feedback.OnCheckmate(board.Black)
		} else {
			g.gameResult = "White wins by checkmate!"
			g.feedback.OnCheckmate(board.White)
		}
		g.recordGameResult(false)
	} else if g.position.IsStalemate() {
		g.gameOver = true
		g.gameResult = "Draw by stalemate"
		g.feedback.OnStalemate()
		g.recordGameResult(true)
	} else if g.isThreefoldRepetition() {
		g.gameOver = true
		g.gameResult = "Draw by threefold repetition"
		g.feedback.OnDraw("threefold repetition")
		g.recordGameResult(true)
	} else if g.position.HalfMoveClock >= 100 {
		g.gameOver = true
		g.gameResult = "Draw by 50-move rule"
		g.feedback.OnDraw("50-move rule")
		g.recordGameResult(true)
	} else if g.position.InCheck() {
		// Show check notification (not game over)
		g.feedback.OnCheck()
	}
}

// recordGameResult persists the outcome to storage, from the human player's
// perspective in human-vs-computer games.
func (g *Game) recordGameResult(draw bool) {
	if g.storage == nil {
		return
	}
	won := false
	if !draw {
		// The side to move just lost (it has no legal moves in checkmate).
		won = g.position.SideToMove != g.playerColor
	}
	result := storage.GameResult{
		Won:           won,
		Draw:          draw,
		Mode:          storage.GameMode(g.mode),
		Difficulty:    storage.Difficulty(g.difficulty),
		SearchQuality: g.quality,
	}
	if err := g.storage.RecordGame(result); err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
	}
}

// isThreefoldRepetition checks if the current position has occurred 3 times.
func (g *Game) isThreefoldRepetition() bool {
	if len(g.positionKeys) < 5 {
		return false
	}

	current := g.positionKeys[len(g.positionKeys)-1]
	count := 0
	for _, key := range g.positionKeys {
		if key == current {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// searchParams returns the iteration budget and worker count for the
// current difficulty and search quality settings.
func (g *Game) searchParams() (iterations, threads int) {
	iterations = g.difficulty.iterations()
	if g.quality == storage.QualityDeep {
		threads = runtime.GOMAXPROCS(0)
	} else {
		threads = 1
	}
	return iterations, threads
}

// startSearch starts the MCTS search in a goroutine.
func (g *Game) startSearch() {
	if g.position.SideToMove == g.playerColor {
		log.Printf("ERROR: startSearch called but SideToMove is %v (player's turn)!",
			g.position.SideToMove)
		return
	}

	g.searching = true
	pos := g.position.Copy()
	color := pos.SideToMove
	iterations, threads := g.searchParams()

	go func() {
		move, stats := mcts.SearchMultithreaded(pos, color, iterations, threads)
		g.searchCh <- searchResult{move: move, stats: stats}
	}()
}

// checkSearchResult checks if the searcher has produced a move.
func (g *Game) checkSearchResult() {
	if !g.searching {
		return
	}

	select {
	case result := <-g.searchCh:
		g.searching = false
		g.lastStats = result.stats
		g.hasLastStat = true
		if g.storage != nil {
			g.storage.RecordSearchRun(storage.SearchRun{
				Move:       result.move.String(),
				Iterations: result.stats.Iterations,
				Threads:    result.stats.Threads,
				Elapsed:    result.stats.Elapsed,
			})
		}
		if result.move == board.NoMove {
			// Searcher found no legal move - game should already be over.
			g.checkGameEnd()
			return
		}
		g.makeMove(result.move)
	default:
		// Still searching
	}
}

// NewGameAction resets the game to starting position.
func (g *Game) NewGameAction() {
	g.position = board.NewPosition()
	g.moveHistory = nil
	g.sanHistory = nil
	g.positionKeys = []string{repetitionKey(g.position)}
	g.lastMove = board.NoMove
	g.clearSelection()
	g.gameOver = false
	g.gameResult = ""
	g.searching = false
	g.hasLastStat = false

	// Clear search channel
	select {
	case <-g.searchCh:
	default:
	}

	// If player chose Black, the searcher (White) moves first
	if g.mode == ModeHumanVsComputer && g.playerColor == board.Black {
		g.startSearch()
	}
}

// ToggleModeAction toggles between Human vs Human and Human vs Computer.
func (g *Game) ToggleModeAction() {
	if g.mode == ModeHumanVsHuman {
		g.mode = ModeHumanVsComputer
	} else {
		g.mode = ModeHumanVsHuman
	}
}

// SetPlayerColor sets which color the human player controls.
// When set to Black, the board is flipped; the searcher makes White's first
// move when NewGameAction next starts a game.
func (g *Game) SetPlayerColor(color board.Color) {
	g.playerColor = color
	g.renderer.SetFlipped(color == board.Black)
}

// PlayerColor returns the color the human player controls.
func (g *Game) PlayerColor() board.Color {
	return g.playerColor
}

// SetDifficulty sets the search difficulty.
func (g *Game) SetDifficulty(d Difficulty) {
	g.difficulty = d
}

// Position returns the current position.
func (g *Game) Position() *board.Position {
	return g.position
}

// MoveHistory returns the move history.
func (g *Game) MoveHistory() []board.Move {
	return g.moveHistory
}

// SANHistory returns the SAN move history.
func (g *Game) SANHistory() []string {
	return g.sanHistory
}

// GameMode returns the current game mode.
func (g *Game) GameMode() GameMode {
	return g.mode
}

// Difficulty returns the current search difficulty.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// GameOver returns true if the game is over.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// GameResult returns the game result string.
func (g *Game) GameResult() string {
	return g.gameResult
}

// IsSearching returns true if the searcher is currently thinking.
func (g *Game) IsSearching() bool {
	return g.searching
}

// LastStats returns the most recently completed search's statistics.
func (g *Game) LastStats() (mcts.Stats, bool) {
	return g.lastStats, g.hasLastStat
}

// Username returns the current username.
func (g *Game) Username() string {
	return g.username
}

// SearchQuality returns the current search quality.
func (g *Game) SearchQuality() storage.SearchQuality {
	return g.quality
}

// ShowSettings opens the settings modal.
func (g *Game) ShowSettings() {
	g.settingsModal.Show(g.prefs, func(prefs *storage.UserPreferences) {
		g.username = prefs.Username
		g.SetDifficulty(Difficulty(prefs.Difficulty))
		g.quality = prefs.SearchQuality
		g.prefs.SoundEnabled = prefs.SoundEnabled
		g.prefs.Username = prefs.Username
		g.prefs.Difficulty = prefs.Difficulty
		g.prefs.SearchQuality = prefs.SearchQuality
		g.prefs.PlayerColor = prefs.PlayerColor

		if prefs.PlayerColor == storage.ColorBlack {
			g.SetPlayerColor(board.Black)
		} else {
			g.SetPlayerColor(board.White)
		}

		g.savePreferences()
	}, nil)
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.storage != nil {
		g.storage.Close()
	}
}
