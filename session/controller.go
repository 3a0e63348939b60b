package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/samber/mo"
	"github.com/vidtogallery/vidtogallery/api"
	"github.com/vidtogallery/vidtogallery/constant"
	"github.com/vidtogallery/vidtogallery/delivery"
	"github.com/vidtogallery/vidtogallery/log"
)

// QualityService resolves a source URL to its available renditions.
type QualityService interface {
	Qualities(ctx context.Context, sourceURL string) (*api.Qualities, error)
}

// DownloadService resolves a source URL and rendition to a playable media URL.
type DownloadService interface {
	Download(ctx context.Context, sourceURL, quality string) (*api.MediaResult, error)
}

// MediaProxy fetches raw media bytes through the backend.
type MediaProxy interface {
	ProxyDownload(ctx context.Context, mediaURL string) (*api.Media, error)
}

// Toast is an in-progress notification. It must be dismissed exactly once.
type Toast interface {
	Dismiss()
}

// Notifier presents progress and outcomes to the user.
type Notifier interface {
	ShowLoading(message string) Toast
	ShowSuccess(message string)
	ShowFailure(message string)
}

// Controller advances a single Session. It is safe for concurrent use;
// network calls are made without holding the lock.
type Controller struct {
	quality  QualityService
	download DownloadService
	proxy    MediaProxy
	channel  delivery.Channel
	notifier Notifier

	mu    sync.Mutex
	state Session
	busy  bool
	// generation is bumped by Reset so that results of abandoned calls are dropped.
	generation uint64
}

// New creates a controller with an idle session.
func New(quality QualityService, download DownloadService, proxy MediaProxy, channel delivery.Channel, notifier Notifier) *Controller {
	return &Controller{
		quality:  quality,
		download: download,
		proxy:    proxy,
		channel:  channel,
		notifier: notifier,
	}
}

// Snapshot returns a copy of the current session.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Capabilities probes the delivery channel.
func (c *Controller) Capabilities() delivery.Capabilities {
	return c.channel.Capabilities()
}

// SelectQuality changes the selected rendition to one of the resolved qualities.
func (c *Controller) SelectQuality(identifier string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, q := range c.state.Qualities {
		if q.Identifier == identifier {
			c.state.SelectedQuality = identifier
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownQuality, identifier)
}

// ResolveQualities looks up the renditions available for sourceURL and selects the first one.
// The error from the quality service is returned as is after being recorded in the session.
func (c *Controller) ResolveQualities(ctx context.Context, sourceURL string) error {
	gen, err := c.begin(sourceURL, ResolvingQualities, func(s *Session) {
		s.Platform = ""
		s.Qualities = nil
		s.SelectedQuality = ""
	})
	if err != nil {
		return err
	}
	defer c.end()

	dismiss := sync.OnceFunc(c.notifier.ShowLoading("Checking qualities...").Dismiss)
	defer dismiss()

	log.WithFields(log.Fields{"url": sourceURL}).Info("resolving qualities")
	qualities, err := c.quality.Qualities(ctx, sourceURL)
	dismiss()

	if err != nil {
		return c.fail(gen, err)
	}

	ok := c.commit(gen, func(s *Session) {
		s.Platform = qualities.Platform
		s.Qualities = qualities.Available
		if len(qualities.Available) > 0 {
			s.SelectedQuality = qualities.Available[0].Identifier
		}
		s.Phase = QualitiesReady
	})
	if ok {
		c.notifier.ShowSuccess(fmt.Sprintf("Found %d qualities on %s", len(qualities.Available), platformName(qualities.Platform)))
	}
	return nil
}

// Download resolves sourceURL at the given quality into a playable media URL.
func (c *Controller) Download(ctx context.Context, sourceURL, quality string) error {
	gen, err := c.begin(sourceURL, Downloading, nil)
	if err != nil {
		return err
	}
	defer c.end()

	dismiss := sync.OnceFunc(c.notifier.ShowLoading("Downloading...").Dismiss)
	defer dismiss()

	log.WithFields(log.Fields{"url": sourceURL, "quality": quality}).Info("downloading")
	media, err := c.download.Download(ctx, sourceURL, quality)
	dismiss()

	if err != nil {
		return c.fail(gen, err)
	}

	ok := c.commit(gen, func(s *Session) {
		s.Resolved = mo.Some(*media)
		s.Phase = DownloadReady
	})
	if ok {
		c.notifier.ShowSuccess(fmt.Sprintf("Ready: %s", titleOf(*media)))
	}
	return nil
}

// ShareVideo shares the media link through the host. It does nothing without resolved
// media or link sharing, and share failures are only logged since the user may have cancelled.
func (c *Controller) ShareVideo(ctx context.Context) {
	media, ok, err := c.claim()
	if err != nil {
		log.WithError(err).Debug("share video")
		return
	}
	defer c.end()

	if ok {
		c.shareVideo(ctx, media)
	}
}

// SaveToGallery fetches the media bytes and hands them to the host's share target.
// It does nothing without resolved media and never falls back to another delivery method.
func (c *Controller) SaveToGallery(ctx context.Context) error {
	media, ok, err := c.claim()
	if err != nil {
		return err
	}
	defer c.end()

	if !ok {
		return nil
	}
	return c.saveToGallery(ctx, media)
}

// DownloadFile fetches the media bytes and forces a download into the user's download location.
func (c *Controller) DownloadFile(ctx context.Context) error {
	media, ok, err := c.claim()
	if err != nil {
		return err
	}
	defer c.end()

	return c.downloadFile(ctx, media, ok)
}

// Deliver picks a delivery method the host supports, preferring the given one, and runs it.
// It returns the method that was used.
func (c *Controller) Deliver(ctx context.Context, preferred delivery.Strategy) (delivery.Strategy, error) {
	media, ok, err := c.claim()
	if err != nil {
		return preferred, err
	}
	defer c.end()

	strategy, err := delivery.Select(c.channel.Capabilities(), preferred)
	if err != nil {
		return strategy, c.failDelivery(err)
	}

	log.WithFields(log.Fields{"strategy": strategy}).Debugf("delivering")
	switch strategy {
	case delivery.Gallery:
		if !ok {
			return strategy, nil
		}
		return strategy, c.saveToGallery(ctx, media)
	case delivery.Download:
		return strategy, c.downloadFile(ctx, media, ok)
	case delivery.Link:
		if ok {
			c.shareVideo(ctx, media)
		}
		return strategy, nil
	default:
		return strategy, c.failDelivery(fmt.Errorf("%s: %w", strategy, delivery.ErrUnsupported))
	}
}

func (c *Controller) shareVideo(ctx context.Context, media api.MediaResult) {
	if !c.channel.Capabilities().ShareLink {
		return
	}
	if err := c.channel.ShareLink(ctx, titleOf(media), media.MediaURL); err != nil {
		log.WithError(err).Warn("share video")
	}
}

func (c *Controller) saveToGallery(ctx context.Context, media api.MediaResult) error {
	c.settle()

	dismiss := sync.OnceFunc(c.notifier.ShowLoading("Saving to gallery...").Dismiss)
	defer dismiss()

	file, err := c.fetch(ctx, media)
	if err == nil {
		if c.channel.CanShareFiles(file) {
			err = c.channel.ShareFiles(ctx, []*delivery.File{file}, titleOf(media))
		} else {
			err = ErrUnsupportedCapability
		}
	}
	dismiss()

	if err != nil {
		return c.failDelivery(err)
	}

	c.notifier.ShowSuccess(fmt.Sprintf("Saved %s to gallery", file.Name))
	return nil
}

func (c *Controller) downloadFile(ctx context.Context, media api.MediaResult, ok bool) error {
	if !ok {
		return c.failDelivery(ErrNoMedia)
	}
	c.settle()

	dismiss := sync.OnceFunc(c.notifier.ShowLoading("Downloading file...").Dismiss)
	defer dismiss()

	file, err := c.fetch(ctx, media)
	if err == nil {
		err = c.trigger(ctx, file)
	}
	dismiss()

	if err != nil {
		return c.failDelivery(err)
	}

	c.notifier.ShowSuccess(fmt.Sprintf("Downloaded %s (%s)", file.Name, humanize.Bytes(uint64(file.Size()))))
	return nil
}

// Reset returns the session to its initial idle state. A call still in flight
// keeps the busy guard until it returns, but its result is discarded.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = Session{}
	c.generation++
}

func (c *Controller) trigger(ctx context.Context, file *delivery.File) error {
	handle, err := c.channel.Expose(&file.Blob)
	if err != nil {
		return err
	}
	defer func() {
		if err := handle.Release(); err != nil {
			log.WithError(err).Warn("release media handle")
		}
	}()

	log.WithFields(log.Fields{"handle": handle.URL(), "file": file.Name}).Debug("triggering download")
	return c.channel.TriggerDownload(ctx, handle, file.Name)
}

func (c *Controller) fetch(ctx context.Context, media api.MediaResult) (*delivery.File, error) {
	payload, err := c.proxy.ProxyDownload(ctx, media.MediaURL)
	if err != nil {
		return nil, err
	}

	contentType := payload.ContentType
	if contentType == "" {
		contentType = constant.MediaType
	}

	file := delivery.NewFile(payload.Data, Filename(media.Title), contentType)
	if !file.IsMedia() {
		log.WithFields(log.Fields{"url": media.MediaURL, "type": contentType}).Warn("proxy returned a non-media payload")
		return nil, fmt.Errorf("%w (got %s)", ErrNotMedia, contentType)
	}
	return file, nil
}

// begin claims the busy guard and moves the session into phase.
func (c *Controller) begin(sourceURL string, phase Phase, prepare func(*Session)) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return 0, ErrBusy
	}
	c.busy = true

	c.state.SourceURL = sourceURL
	c.state.Phase = phase
	c.state.LastError = ""
	c.state.Resolved = mo.None[api.MediaResult]()
	if prepare != nil {
		prepare(&c.state)
	}
	return c.generation, nil
}

func (c *Controller) end() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
}

// commit applies update unless the session was reset since gen.
func (c *Controller) commit(gen uint64, update func(*Session)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		log.Debugf("discarding result of a call abandoned by reset")
		return false
	}
	update(&c.state)
	return true
}

func (c *Controller) fail(gen uint64, err error) error {
	ok := c.commit(gen, func(s *Session) {
		s.LastError = err.Error()
		s.Phase = Error
	})
	if ok {
		log.WithError(err).Error("session operation failed")
		c.notifier.ShowFailure(err.Error())
	}
	return err
}

// claim takes the busy guard for a delivery operation without touching the session
// and returns the media to deliver, if any.
func (c *Controller) claim() (api.MediaResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return api.MediaResult{}, false, ErrBusy
	}
	c.busy = true

	media, ok := c.state.Resolved.Get()
	return media, ok && media.MediaURL != "", nil
}

// settle clears the previous failure before a delivery attempt.
func (c *Controller) settle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.LastError = ""
	c.state.Phase = c.state.settled()
}

func (c *Controller) failDelivery(err error) error {
	c.mu.Lock()
	c.state.LastError = err.Error()
	c.state.Phase = Error
	c.mu.Unlock()

	log.WithError(err).Error("delivery failed")
	c.notifier.ShowFailure(err.Error())
	return err
}

func titleOf(media api.MediaResult) string {
	if media.Title != "" {
		return media.Title
	}
	return "Video"
}

func platformName(platform string) string {
	if platform == "" {
		return "this site"
	}
	return platform
}
