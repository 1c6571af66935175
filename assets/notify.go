package assets

import (
	"fmt"

	"github.com/alphalions/gallery/types"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// FailedDownloadMessage is shown for any failure that is not a missing or empty asset.
const FailedDownloadMessage = "Failed to download file."

// Notification is the transient message shown to the viewer after a download attempt.
type Notification struct {
	Level   Level  `json:"level" extensions:"x-order:0"`
	Message string `json:"message" extensions:"x-order:1"`
}

// Notify converts a download error into a viewer notification.
func Notify(err error) Notification {
	if err == nil {
		return Notification{Level: LevelSuccess}
	}
	if types.IsType(err, types.ErrTypeAssetNotFound) || types.IsType(err, types.ErrTypeEmptyPayload) {
		return Notification{Level: LevelError, Message: types.Message(err)}
	}
	return Notification{Level: LevelError, Message: FailedDownloadMessage}
}

// Started is the notification for a successful download.
func Started(p *Payload) Notification {
	msg := fmt.Sprintf("Download started for %s %s!", p.Name, p.Format.Label())
	if p.Format == types.FormatPFP {
		msg = fmt.Sprintf("Download started for %s in %s format!", p.Name, p.Format.Label())
	}
	return Notification{Level: LevelSuccess, Message: msg}
}
