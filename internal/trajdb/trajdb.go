// Package trajdb persists reconstructed trajectories to SQLite for
// downstream analysis tools. The reconstruction library itself never
// touches storage; this package is consumed by export binaries only.
package trajdb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/alexlib/postptv/internal/ptv"
)

type DB struct {
	*sql.DB
}

// Open opens (creating if needed) a trajectory database at path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS trajectories (
			traj_id           BIGINT PRIMARY KEY,
			sample_count      BIGINT,
			start_frame       BIGINT,
			end_frame         BIGINT,
			mean_speed_mps    DOUBLE,
			peak_speed_mps    DOUBLE,
			p50_speed_mps     DOUBLE,
			p85_speed_mps     DOUBLE,
			p95_speed_mps     DOUBLE
		);
		CREATE TABLE IF NOT EXISTS trajectory_samples (
			traj_id           BIGINT,
			frame             BIGINT,
			x                 DOUBLE,
			y                 DOUBLE,
			z                 DOUBLE,
			vx                DOUBLE,
			vy                DOUBLE,
			vz                DOUBLE,
			PRIMARY KEY (traj_id, frame),
			FOREIGN KEY (traj_id) REFERENCES trajectories(traj_id)
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create trajectory schema: %w", err)
	}

	return &DB{db}, nil
}

// InsertTrajectory writes one trajectory and all its samples in a single
// transaction.
func (db *DB) InsertTrajectory(tr *ptv.Trajectory) error {
	stats := ptv.ComputeSpeedStats(tr)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin insert trajectory: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO trajectories (
			traj_id, sample_count, start_frame, end_frame,
			mean_speed_mps, peak_speed_mps,
			p50_speed_mps, p85_speed_mps, p95_speed_mps
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		tr.ID,
		tr.Len(),
		tr.StartFrame(),
		tr.EndFrame(),
		stats.Mean,
		stats.Peak,
		stats.P50, stats.P85, stats.P95,
	)
	if err != nil {
		return fmt.Errorf("insert trajectory: %w", err)
	}

	for _, s := range tr.Samples {
		_, err = tx.Exec(`
			INSERT INTO trajectory_samples (traj_id, frame, x, y, z, vx, vy, vz)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			tr.ID, s.Time,
			s.Pos[0], s.Pos[1], s.Pos[2],
			s.Vel[0], s.Vel[1], s.Vel[2],
		)
		if err != nil {
			return fmt.Errorf("insert trajectory sample: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert trajectory: %w", err)
	}
	return nil
}

// InsertTrajectories writes a whole trajectory list.
func (db *DB) InsertTrajectories(trajects []*ptv.Trajectory) error {
	for _, tr := range trajects {
		if err := db.InsertTrajectory(tr); err != nil {
			return err
		}
	}
	return nil
}

// Trajectories reads back every stored trajectory, samples in frame order.
func (db *DB) Trajectories() ([]*ptv.Trajectory, error) {
	rows, err := db.Query(`
		SELECT traj_id, frame, x, y, z, vx, vy, vz
		FROM trajectory_samples
		ORDER BY traj_id, frame
	`)
	if err != nil {
		return nil, fmt.Errorf("query trajectory samples: %w", err)
	}
	defer rows.Close()

	var (
		trajects []*ptv.Trajectory
		current  *ptv.Trajectory
	)
	for rows.Next() {
		var (
			id     int64
			sample ptv.Sample
		)
		err := rows.Scan(&id, &sample.Time,
			&sample.Pos[0], &sample.Pos[1], &sample.Pos[2],
			&sample.Vel[0], &sample.Vel[1], &sample.Vel[2])
		if err != nil {
			return nil, fmt.Errorf("scan trajectory sample: %w", err)
		}

		if current == nil || current.ID != id {
			current = &ptv.Trajectory{ID: id}
			trajects = append(trajects, current)
		}
		current.Samples = append(current.Samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trajectory samples: %w", err)
	}

	return trajects, nil
}
