package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_10_000100_create_core_tables",
			Up: func(db *gorm.DB) error {
				// Clubs and memberships
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS clubs (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						slug VARCHAR(255) NOT NULL UNIQUE,
						city VARCHAR(100),
						invite_code VARCHAR(64) NOT NULL UNIQUE,
						owner_id BIGINT NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_clubs_deleted_at ON clubs(deleted_at);

					CREATE TABLE IF NOT EXISTS memberships (
						id BIGSERIAL PRIMARY KEY,
						club_id BIGINT NOT NULL,
						user_id BIGINT NOT NULL,
						role VARCHAR(20) DEFAULT 'member',
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (club_id) REFERENCES clubs(id) ON DELETE CASCADE,
						FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_memberships_club_user ON memberships(club_id, user_id);
					CREATE INDEX IF NOT EXISTS idx_memberships_deleted_at ON memberships(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Teams with the denormalized stats columns
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS teams (
						id BIGSERIAL PRIMARY KEY,
						club_id BIGINT NOT NULL,
						name VARCHAR(255) NOT NULL,
						slug VARCHAR(255) NOT NULL UNIQUE,
						age_group VARCHAR(50),
						matches_played INT DEFAULT 0,
						wins INT DEFAULT 0,
						draws INT DEFAULT 0,
						losses INT DEFAULT 0,
						goals_for INT DEFAULT 0,
						goals_against INT DEFAULT 0,
						points INT DEFAULT 0,
						streak_type VARCHAR(10) DEFAULT 'win',
						streak_count INT DEFAULT 0,
						stats_updated_at TIMESTAMP NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (club_id) REFERENCES clubs(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_teams_club_id ON teams(club_id);
					CREATE INDEX IF NOT EXISTS idx_teams_deleted_at ON teams(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Players
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id BIGSERIAL PRIMARY KEY,
						club_id BIGINT NOT NULL,
						team_id BIGINT NULL,
						first_name VARCHAR(255) NOT NULL,
						last_name VARCHAR(255) NOT NULL,
						position VARCHAR(50),
						shirt_number INT NULL,
						birth_date TIMESTAMP NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (club_id) REFERENCES clubs(id) ON DELETE CASCADE,
						FOREIGN KEY (team_id) REFERENCES teams(id) ON DELETE SET NULL
					);
					CREATE INDEX IF NOT EXISTS idx_players_club_id ON players(club_id);
					CREATE INDEX IF NOT EXISTS idx_players_team_id ON players(team_id);
					CREATE INDEX IF NOT EXISTS idx_players_deleted_at ON players(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Matches; home/away + status carry the two stats read paths
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id BIGSERIAL PRIMARY KEY,
						club_id BIGINT NOT NULL,
						home_team_id BIGINT NOT NULL,
						away_team_id BIGINT NOT NULL,
						status VARCHAR(20) DEFAULT 'scheduled',
						kickoff_at TIMESTAMP NOT NULL,
						venue VARCHAR(255),
						home_goals INT NULL,
						away_goals INT NULL,
						home_penalties INT NULL,
						away_penalties INT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (club_id) REFERENCES clubs(id) ON DELETE CASCADE,
						FOREIGN KEY (home_team_id) REFERENCES teams(id) ON DELETE CASCADE,
						FOREIGN KEY (away_team_id) REFERENCES teams(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_matches_club_id ON matches(club_id);
					CREATE INDEX IF NOT EXISTS idx_matches_home_team_status ON matches(home_team_id, status);
					CREATE INDEX IF NOT EXISTS idx_matches_away_team_status ON matches(away_team_id, status);
					CREATE INDEX IF NOT EXISTS idx_matches_deleted_at ON matches(deleted_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				for _, table := range []string{"matches", "players", "teams", "memberships", "clubs"} {
					if err := db.Exec("DROP TABLE IF EXISTS " + table + " CASCADE").Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
