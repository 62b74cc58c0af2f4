package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strconv"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"epdctl/internal/battery"
	"epdctl/internal/canvas"
	"epdctl/internal/capture"
	"epdctl/internal/display"
	"epdctl/internal/epd"
	"epdctl/internal/font"
	appLog "epdctl/internal/log"
)

// maxScale bounds the glyph magnification accepted from requests.
const maxScale = 32

// Wire color codes are the canvas.Color values: 0 white, 1 black, 2 accent.
const colorBlack = int(canvas.Black)

type textItem struct {
	Text  string `json:"text"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color int    `json:"color"`
	Scale int    `json:"scale"`
	Font  int    `json:"font"`
}

type textRequest struct {
	textItem
	Clear bool `json:"clear"`
}

type rectRequest struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	W       int  `json:"w"`
	H       int  `json:"h"`
	Color   int  `json:"color"`
	Clear   bool `json:"clear"`
	Outline bool `json:"outline"`
}

type partialRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type windowJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type partialResponse struct {
	Success bool       `json:"success"`
	Window  windowJSON `json:"window"`
}

type orientationResponse struct {
	Success     bool `json:"success"`
	Orientation int  `json:"orientation"`
	Degrees     int  `json:"degrees"`
}

type statusResponse struct {
	State       string         `json:"state"`
	RenderOnly  bool           `json:"render_only"`
	Orientation int            `json:"orientation"`
	Degrees     int            `json:"degrees"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	PanelWidth  int            `json:"panel_width"`
	PanelHeight int            `json:"panel_height"`
	BWOnly      bool           `json:"bw_only"`
	Dither      bool           `json:"dither"`
	Battery     battery.Status `json:"battery"`
	Network     *networkJSON   `json:"network,omitempty"`
}

type networkJSON struct {
	SSID        string `json:"ssid"`
	PasswordSet bool   `json:"password_set"`
}

// readBody reads at most limit bytes. It writes the error response itself
// and reports whether the caller should continue.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "Content too long")
		} else {
			writeError(w, http.StatusBadRequest, "Failed to read request")
		}
		return nil, false
	}
	return body, true
}

// decodeJSON decodes the body over v, so fields absent from the request
// keep the defaults already in v. An empty body keeps every default.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	body, ok := readBody(w, r, maxJSONBody)
	if !ok {
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return true
	}
	if err := json.Unmarshal(body, v); err != nil {
		appLog.Debug("invalid JSON request", "path", r.URL.Path, "err", err)
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}
	return true
}

// colorOf maps a wire color code. Unknown codes draw black.
func colorOf(code int) canvas.Color {
	if code >= 0 {
		if c := canvas.Color(code); int(c) == code && c.Valid() {
			return c
		}
	}
	appLog.Warn("unknown color code, drawing black", "color", code)
	return canvas.Black
}

// fontOf maps a wire font code. Codes past the table select the largest font.
func fontOf(code int) *font.Font {
	if f, ok := font.ByCode(code); ok {
		return f
	}
	if code < 0 {
		return font.Small
	}
	return font.Large
}

func clampScale(s int) int {
	return min(max(s, 1), maxScale)
}

func (it textItem) draw(d *display.Display) {
	d.DrawText(fontOf(it.Font), it.X, it.Y, it.Text, colorOf(it.Color), clampScale(it.Scale))
}

// respond writes the outcome of a display operation. Busy timeouts mean the
// refresh ran degraded and still count as success.
func respond(w http.ResponseWriter, err error, message string) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, successResponse{Success: true, Message: message})
	case errors.Is(err, epd.ErrBusyTimeout):
		writeJSON(w, http.StatusOK, successResponse{Success: true, Message: message, Warning: err.Error()})
	default:
		writeDisplayError(w, err)
	}
}

func writeDisplayError(w http.ResponseWriter, err error) {
	appLog.Error("display operation failed", err)
	status := http.StatusInternalServerError
	if errors.Is(err, epd.ErrNotReady) {
		status = http.StatusServiceUnavailable
	}
	writeError(w, status, err.Error())
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	req := textRequest{
		textItem: textItem{Text: "Hello", X: 10, Y: 10, Color: colorBlack, Scale: 1, Font: 0},
		Clear:    true,
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	err := s.opts.Guard.Do(func(d *display.Display) error {
		if req.Clear {
			d.Clear()
		}
		req.draw(d)
		return d.Update()
	})
	respond(w, err, "Text displayed")
}

func (s *Server) handleMulti(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Orientation *int            `json:"orientation"`
		Texts       json.RawMessage `json:"texts"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(req.Texts, &raw); err != nil || raw == nil {
		writeError(w, http.StatusBadRequest, "texts must be an array")
		return
	}
	if req.Orientation != nil && (*req.Orientation < 0 || *req.Orientation > 3) {
		writeError(w, http.StatusBadRequest, "Invalid orientation value (must be 0-3)")
		return
	}

	items := make([]textItem, 0, len(raw))
	for i, m := range raw {
		it := textItem{Color: colorBlack, Scale: 1, Font: 1}
		if bytes.HasPrefix(bytes.TrimSpace(m), []byte("{")) && json.Unmarshal(m, &it) == nil {
			items = append(items, it)
			continue
		}
		appLog.Warn("skipping invalid text item", "index", i)
	}

	err := s.opts.Guard.Do(func(d *display.Display) error {
		if req.Orientation != nil {
			d.SetOrientation(canvas.Orientation(*req.Orientation))
		}
		d.Clear()
		for _, it := range items {
			it.draw(d)
		}
		return d.Update()
	})
	respond(w, err, fmt.Sprintf("%d texts displayed", len(items)))
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	err := s.opts.Guard.Do(func(d *display.Display) error {
		d.Clear()
		return d.Update()
	})
	respond(w, err, "Display cleared")
}

func (s *Server) handleRect(w http.ResponseWriter, r *http.Request) {
	req := rectRequest{W: 50, H: 50, Color: colorBlack}
	if !decodeJSON(w, r, &req) {
		return
	}
	err := s.opts.Guard.Do(func(d *display.Display) error {
		if req.Clear {
			d.Clear()
		}
		if req.Outline {
			d.DrawRect(req.X, req.Y, req.W, req.H, colorOf(req.Color))
		} else {
			d.FillRect(req.X, req.Y, req.W, req.H, colorOf(req.Color))
		}
		return d.Update()
	})
	respond(w, err, "Rectangle drawn")
}

func (s *Server) handleOrientation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Orientation any `json:"orientation"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	v, ok := req.Orientation.(float64)
	if !ok || v != float64(int(v)) {
		writeError(w, http.StatusBadRequest, "Missing or invalid orientation parameter")
		return
	}
	o := int(v)
	if o < 0 || o > 3 {
		writeError(w, http.StatusBadRequest, "Invalid orientation value (must be 0-3)")
		return
	}
	_ = s.opts.Guard.Do(func(d *display.Display) error {
		d.SetOrientation(canvas.Orientation(o))
		return nil
	})
	writeJSON(w, http.StatusOK, orientationResponse{
		Success:     true,
		Orientation: o,
		Degrees:     canvas.Orientation(o).Degrees(),
	})
}

func (s *Server) handlePartial(w http.ResponseWriter, r *http.Request) {
	var req partialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.W <= 0 || req.H <= 0 {
		writeError(w, http.StatusBadRequest, "w and h must be positive")
		return
	}
	var win image.Rectangle
	err := s.opts.Guard.Do(func(d *display.Display) error {
		pw, ph := d.Size()
		if !image.Rect(req.X, req.Y, req.X+req.W, req.Y+req.H).In(image.Rect(0, 0, pw, ph)) {
			return errOutOfBounds
		}
		var err error
		win, err = d.SetPartialWindow(req.X, req.Y, req.W, req.H)
		return err
	})
	if errors.Is(err, errOutOfBounds) {
		writeError(w, http.StatusBadRequest, "window outside the panel")
		return
	}
	if err != nil {
		writeDisplayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partialResponse{
		Success: true,
		Window:  windowJSON{X: win.Min.X, Y: win.Min.Y, W: win.Dx(), H: win.Dy()},
	})
}

var errOutOfBounds = errors.New("window outside the panel")

func (s *Server) handlePartialEnter(w http.ResponseWriter, r *http.Request) {
	err := s.opts.Guard.Do(func(d *display.Display) error { return d.EnterPartial() })
	respond(w, err, "Partial mode entered")
}

func (s *Server) handlePartialExit(w http.ResponseWriter, r *http.Request) {
	err := s.opts.Guard.Do(func(d *display.Display) error { return d.ExitPartial() })
	respond(w, err, "Partial mode exited")
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r, maxImageBody)
	if !ok {
		return
	}
	img, format, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unsupported or invalid image")
		return
	}
	q := r.URL.Query()
	var o imageOptions
	if v := q.Get("dither"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid dither parameter")
			return
		}
		o.Dither = &on
	}
	if v := q.Get("crop"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid crop parameter")
			return
		}
		o.Crop = on
	}
	appLog.Info("image received", "format", format, "size", img.Bounds().Size())
	respond(w, s.showImage(img, o), "Image displayed")
}

func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	if s.opts.Capturer == nil {
		writeError(w, http.StatusNotImplemented, "capture is not available")
		return
	}
	var req struct {
		URL string `json:"url"`
		imageOptions
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "Missing url parameter")
		return
	}
	var bounds image.Rectangle
	_ = s.opts.Guard.Do(func(d *display.Display) error {
		bounds = d.Bounds()
		return nil
	})
	// The browser runs outside the lock; only drawing needs the display.
	img, err := s.opts.Capturer.Capture(r.Context(), capture.Options{
		URL:    req.URL,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	})
	if err != nil {
		appLog.Error("capture failed", err, "url", req.URL)
		writeError(w, http.StatusBadGateway, "Capture failed")
		return
	}
	respond(w, s.showImage(img, req.imageOptions), "Page captured")
}

// imageOptions are the per-request image settings. A nil Dither keeps the
// display default.
type imageOptions struct {
	Dither *bool `json:"dither"`
	Crop   bool  `json:"crop"`
}

func (s *Server) showImage(img image.Image, o imageOptions) error {
	return s.opts.Guard.Do(func(d *display.Display) error {
		opts := display.ImageOptions{Dither: d.Dither(), Crop: o.Crop}
		if o.Dither != nil {
			opts.Dither = *o.Dither
		}
		d.Clear()
		if err := d.DrawImageWith(img, opts); err != nil {
			return err
		}
		return d.Update()
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	var resp statusResponse
	_ = s.opts.Guard.Do(func(d *display.Display) error {
		b := d.Bounds()
		pw, ph := d.Size()
		o := d.Orientation()
		resp = statusResponse{
			State:       d.State().String(),
			RenderOnly:  d.RenderOnly(),
			Orientation: int(o),
			Degrees:     o.Degrees(),
			Width:       b.Dx(),
			Height:      b.Dy(),
			PanelWidth:  pw,
			PanelHeight: ph,
			BWOnly:      d.BlackWhite(),
			Dither:      d.Dither(),
		}
		return nil
	})
	resp.Battery = s.batteryStatus(r.Context())
	if n := s.opts.Network.Redacted(); n.SSID != "" {
		resp.Network = &networkJSON{SSID: n.SSID, PasswordSet: n.Password != ""}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := s.opts.Guard.Do(func(d *display.Display) error { return d.PNG(&buf) })
	if err != nil {
		writeDisplayError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}
