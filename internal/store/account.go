package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DDLX-svg/EdifyX-sub000/ent"
	"github.com/DDLX-svg/EdifyX-sub000/ent/snapshot"
)

// accountRepo implements AccountRepo using the ent client. Account
// records ride the Snapshot entity: the newest row per user wins.
type accountRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *accountRepo) SaveAccount(ctx context.Context, data *AccountData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	dataMap, err := accountDataToMap(data)
	if err != nil {
		return fmt.Errorf("marshal account data: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save account snapshot: %w", err)
	}
	return nil
}

func (r *accountRepo) LatestAccount(ctx context.Context, userID string) (*AccountData, error) {
	s, err := r.client.Snapshot.Query().
		Where(snapshot.UserID(userID)).
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest account: %w", err)
	}
	return entSnapshotToAccount(s)
}

func (r *accountRepo) PruneAccounts(ctx context.Context, userID string, keep int) error {
	snapshots, err := r.client.Snapshot.Query().
		Where(snapshot.UserID(userID)).
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Sequence
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.UserID(userID), snapshot.SequenceLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune account snapshots: %w", err)
	}
	return nil
}

// accountDataToMap converts AccountData to map[string]any for ent JSON storage.
func accountDataToMap(data *AccountData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSnapshotToAccount converts an ent Snapshot row back to AccountData.
func entSnapshotToAccount(s *ent.Snapshot) (*AccountData, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var data AccountData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal account data: %w", err)
	}
	return &data, nil
}
