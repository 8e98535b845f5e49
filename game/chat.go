// This file is part of CompassCore project.
// Copyright (C) 2026.  CompassCore authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Йоу, чат! Тут системні повідомлення гри:
// "гравець приєднався", "гравець вийшов", "повернення в меню".
// Клієнт показує останні з них внизу екрану.

package game

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Повідомлення живуть 10 секунд, потім зникають з екрану
const MsgExpiresTime = time.Second * 10

// maxMessages - скільки повідомлень тримаємо
const maxMessages = 16

// Message - одне системне повідомлення
type Message struct {
	Text string
	At   time.Time
}

// globalChat - кільцевий буфер системних повідомлень
type globalChat struct {
	log *zap.Logger

	mu       sync.Mutex
	messages []Message
}

// broadcastSystemChat додає повідомлення і пише його в лог
func (g *globalChat) broadcastSystemChat(text string, at time.Time) {
	g.log.Info(text)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.messages = append(g.messages, Message{Text: text, At: at})
	if over := len(g.messages) - maxMessages; over > 0 {
		g.messages = append(g.messages[:0], g.messages[over:]...)
	}
}

// recent повертає не прострочені повідомлення, найстаріші першими
func (g *globalChat) recent(now time.Time) []Message {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []Message
	for _, m := range g.messages {
		if now.Sub(m.At) < MsgExpiresTime {
			out = append(out, m)
		}
	}
	return out
}
