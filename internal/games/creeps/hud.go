package creeps

import (
	"strconv"

	"github.com/vovakirdan/dodge-creeps/internal/config"
)

// Message is the text the HUD's message label shows.
type Message int

const (
	MessageNone Message = iota
	MessageGetReady
	MessageGameOver
	MessageTitle
)

// HUD is the score label, the centre message and the start button.
type HUD struct {
	texts config.CreepsHUD

	message        Message
	messageVisible bool
	score          string
	buttonVisible  bool

	getReady     *Timer
	startMessage *Timer
	startButton  *Timer

	onStartGame func()
}

// NewHUD creates a HUD showing the title and the start button. The three
// timers are owned by the caller and drive the message sequence.
func NewHUD(texts config.CreepsHUD, getReady, startMessage, startButton *Timer) *HUD {
	return &HUD{
		texts:          texts,
		message:        MessageTitle,
		messageVisible: true,
		score:          "0",
		buttonVisible:  true,
		getReady:       getReady,
		startMessage:   startMessage,
		startButton:    startButton,
	}
}

// OnStartGame registers the callback run when the start button is pressed.
func (h *HUD) OnStartGame(fn func()) {
	h.onStartGame = fn
}

func (h *HUD) showMessage(m Message) {
	h.message = m
	h.messageVisible = true
}

// ShowGetReady shows "Get Ready" until the get-ready timer fires.
func (h *HUD) ShowGetReady() {
	// A leftover game-over sequence must not overwrite the new round
	h.startMessage.Stop()
	h.startButton.Stop()
	h.buttonVisible = false

	h.showMessage(MessageGetReady)
	h.getReady.Start()
}

// ShowGameOver shows "Game Over" and starts the sequence back to the title.
func (h *HUD) ShowGameOver() {
	h.getReady.Stop()
	h.showMessage(MessageGameOver)
	h.startMessage.Start()
}

// UpdateScore sets the score label to n.
func (h *HUD) UpdateScore(n int) {
	h.score = strconv.Itoa(n)
}

// OnGetReadyTimeout hides the message.
func (h *HUD) OnGetReadyTimeout() {
	h.messageVisible = false
}

// OnStartMessageTimeout shows the title and arms the start button timer.
func (h *HUD) OnStartMessageTimeout() {
	h.showMessage(MessageTitle)
	h.startButton.Start()
}

// OnStartButtonTimeout shows the start button.
func (h *HUD) OnStartButtonTimeout() {
	h.buttonVisible = true
}

// PressStartButton hides the button and emits start_game. It reports
// false and does nothing while the button is hidden.
func (h *HUD) PressStartButton() bool {
	if !h.buttonVisible {
		return false
	}
	h.startButton.Stop()
	h.buttonVisible = false
	if h.onStartGame != nil {
		h.onStartGame()
	}
	return true
}

// Message returns the current message.
func (h *HUD) Message() Message {
	return h.message
}

// MessageText returns the current message's text.
func (h *HUD) MessageText() string {
	switch h.message {
	case MessageGetReady:
		return h.texts.GetReady
	case MessageGameOver:
		return h.texts.GameOver
	case MessageTitle:
		return h.texts.Title
	default:
		return ""
	}
}

// MessageVisible reports whether the message label is shown.
func (h *HUD) MessageVisible() bool {
	return h.messageVisible
}

// ScoreText returns the score label.
func (h *HUD) ScoreText() string {
	return h.score
}

// StartButtonVisible reports whether the start button is shown.
func (h *HUD) StartButtonVisible() bool {
	return h.buttonVisible
}

// StartButtonText returns the start button's label.
func (h *HUD) StartButtonText() string {
	return h.texts.StartButton
}
