// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fujioka8700/eitan/ent/answerevent"
	"github.com/fujioka8700/eitan/ent/schema"
	"github.com/fujioka8700/eitan/ent/sessionevent"
	"github.com/fujioka8700/eitan/ent/snapshot"
	"github.com/fujioka8700/eitan/ent/userwordstat"
	"github.com/fujioka8700/eitan/ent/word"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescEnglish is the schema descriptor for english field.
	answereventDescEnglish := answereventFields[2].Descriptor()
	// answerevent.EnglishValidator is a validator for the "english" field. It is called by the builders before save.
	answerevent.EnglishValidator = answereventDescEnglish.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[3].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	// answereventDescResolution is the schema descriptor for resolution field.
	answereventDescResolution := answereventFields[6].Descriptor()
	// answerevent.ResolutionValidator is a validator for the "resolution" field. It is called by the builders before save.
	answerevent.ResolutionValidator = answereventDescResolution.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[3].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescLevel is the schema descriptor for level field.
	sessioneventDescLevel := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultLevel holds the default value on creation for the level field.
	sessionevent.DefaultLevel = sessioneventDescLevel.Default.(int)
	// sessioneventDescRequestedSize is the schema descriptor for requested_size field.
	sessioneventDescRequestedSize := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultRequestedSize holds the default value on creation for the requested_size field.
	sessionevent.DefaultRequestedSize = sessioneventDescRequestedSize.Default.(int)
	// sessioneventDescItemsServed is the schema descriptor for items_served field.
	sessioneventDescItemsServed := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultItemsServed holds the default value on creation for the items_served field.
	sessionevent.DefaultItemsServed = sessioneventDescItemsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescAccuracyPercent is the schema descriptor for accuracy_percent field.
	sessioneventDescAccuracyPercent := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultAccuracyPercent holds the default value on creation for the accuracy_percent field.
	sessionevent.DefaultAccuracyPercent = sessioneventDescAccuracyPercent.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescUserID is the schema descriptor for user_id field.
	snapshotDescUserID := snapshotFields[0].Descriptor()
	// snapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	snapshot.UserIDValidator = snapshotDescUserID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	userwordstatFields := schema.UserWordStat{}.Fields()
	_ = userwordstatFields
	// userwordstatDescUserID is the schema descriptor for user_id field.
	userwordstatDescUserID := userwordstatFields[0].Descriptor()
	// userwordstat.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userwordstat.UserIDValidator = userwordstatDescUserID.Validators[0].(func(string) error)
	// userwordstatDescStatus is the schema descriptor for status field.
	userwordstatDescStatus := userwordstatFields[2].Descriptor()
	// userwordstat.DefaultStatus holds the default value on creation for the status field.
	userwordstat.DefaultStatus = userwordstatDescStatus.Default.(string)
	// userwordstatDescCorrectCount is the schema descriptor for correct_count field.
	userwordstatDescCorrectCount := userwordstatFields[3].Descriptor()
	// userwordstat.DefaultCorrectCount holds the default value on creation for the correct_count field.
	userwordstat.DefaultCorrectCount = userwordstatDescCorrectCount.Default.(int)
	// userwordstatDescIncorrectCount is the schema descriptor for incorrect_count field.
	userwordstatDescIncorrectCount := userwordstatFields[4].Descriptor()
	// userwordstat.DefaultIncorrectCount holds the default value on creation for the incorrect_count field.
	userwordstat.DefaultIncorrectCount = userwordstatDescIncorrectCount.Default.(int)
	// userwordstatDescLastStudiedAt is the schema descriptor for last_studied_at field.
	userwordstatDescLastStudiedAt := userwordstatFields[5].Descriptor()
	// userwordstat.DefaultLastStudiedAt holds the default value on creation for the last_studied_at field.
	userwordstat.DefaultLastStudiedAt = userwordstatDescLastStudiedAt.Default.(func() time.Time)
	// userwordstat.UpdateDefaultLastStudiedAt holds the default value on update for the last_studied_at field.
	userwordstat.UpdateDefaultLastStudiedAt = userwordstatDescLastStudiedAt.UpdateDefault.(func() time.Time)
	wordFields := schema.Word{}.Fields()
	_ = wordFields
	// wordDescEnglish is the schema descriptor for english field.
	wordDescEnglish := wordFields[0].Descriptor()
	// word.EnglishValidator is a validator for the "english" field. It is called by the builders before save.
	word.EnglishValidator = wordDescEnglish.Validators[0].(func(string) error)
	// wordDescJapanese is the schema descriptor for japanese field.
	wordDescJapanese := wordFields[1].Descriptor()
	// word.JapaneseValidator is a validator for the "japanese" field. It is called by the builders before save.
	word.JapaneseValidator = wordDescJapanese.Validators[0].(func(string) error)
	// wordDescLevel is the schema descriptor for level field.
	wordDescLevel := wordFields[2].Descriptor()
	// word.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	word.LevelValidator = func() func(int) error {
		validators := wordDescLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(level int) error {
			for _, fn := range fns {
				if err := fn(level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
}
