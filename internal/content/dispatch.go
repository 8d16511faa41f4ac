package content

import "go.uber.org/zap"

// ID names one of the overlay content panels.
type ID string

const (
	IDAbout    ID = "about"
	IDContact  ID = "contact"
	IDNotes    ID = "notes"
	IDCard     ID = "card"
	IDProjects ID = "projects"
	IDResume   ID = "resume"
	IDSkills   ID = "skills"
)

var panelByKind = map[Kind]ID{
	KindLaptop:       IDAbout,
	KindPhone:        IDContact,
	KindNotebook:     IDNotes,
	KindBusinessCard: IDCard,
	KindFolder:       IDProjects,
	KindResume:       IDResume,
	KindTablet:       IDSkills,
}

// Dispatcher maps item kinds to content panels. Unknown kinds are logged
// and dropped, never propagated as errors.
type Dispatcher struct {
	log *zap.Logger
}

func NewDispatcher(log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{log: log}
}

func (d *Dispatcher) Dispatch(k Kind) (ID, bool) {
	id, ok := panelByKind[k]
	if !ok {
		d.log.Warn("no content panel for item kind", zap.String("kind", k.String()))
		return "", false
	}
	return id, true
}
