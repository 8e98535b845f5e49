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

// Йоу, чат! BVH дерево тепер живе на екрані.
// Кожен лист - прямокутник інтерфейсу (панель інструментів, годинник, чат),
// а запит "чи лежить ця точка під якимось віджетом" йде від кореня вниз
// і відкидає цілі гілки, чий об'єм точку не містить.

package bvh

import (
	"container/heap"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Bound - обмежувальний об'єм, який вміє об'єднуватись і має ціну
type Bound[F constraints.Float, B any] interface {
	Union(B) B  // найменший об'єм що містить обидва
	Surface() F // ціна об'єму для евристики вставки
}

// Node - вузол дерева; значення є тільки в листах
type Node[F constraints.Float, B Bound[F, B], V any] struct {
	Box      B
	Value    V
	parent   *Node[F, B, V]
	children [2]*Node[F, B, V]
	leaf     bool
}

// sibling повертає другу дитину батька
func (n *Node[F, B, V]) sibling() *Node[F, B, V] {
	p := n.parent
	switch n {
	case p.children[0]:
		return p.children[1]
	case p.children[1]:
		return p.children[0]
	}
	panic("bvh: node is not a child of its parent")
}

// slot повертає вказівник на поле батька, де лежить child
func (n *Node[F, B, V]) slot(child *Node[F, B, V]) **Node[F, B, V] {
	switch child {
	case n.children[0]:
		return &n.children[0]
	case n.children[1]:
		return &n.children[1]
	}
	panic("bvh: node is not a child of its parent")
}

// refit перераховує об'єм внутрішнього вузла
func (n *Node[F, B, V]) refit() {
	n.Box = n.children[0].Box.Union(n.children[1].Box)
}

func (n *Node[F, B, V]) walk(test func(B) bool, visit func(*Node[F, B, V]) bool) bool {
	if n == nil || !test(n.Box) {
		return true
	}
	if n.leaf {
		return visit(n)
	}
	return n.children[0].walk(test, visit) && n.children[1].walk(test, visit)
}

// Tree - дерево обмежувальних об'ємів. Нульове значення готове до роботи.
type Tree[F constraints.Float, B Bound[F, B], V any] struct {
	root  *Node[F, B, V]
	count int
}

// Len повертає кількість листів
func (t *Tree[F, B, V]) Len() int { return t.count }

// Insert додає лист і повертає його вузол (потрібен для Delete).
// Сусіда шукаємо гілками і межами за ціною периметра, потім
// вставляємо новий батьківський вузол і оновлюємо об'єми до кореня.
func (t *Tree[F, B, V]) Insert(box B, value V) *Node[F, B, V] {
	n := &Node[F, B, V]{Box: box, Value: value, leaf: true}
	t.count++
	if t.root == nil {
		t.root = n
		return n
	}

	best := t.root
	bestSlot := &t.root
	bestCost := t.root.Box.Union(box).Surface()
	boxCost := box.Surface()

	queue := candidates[F, Node[F, B, V]]{{node: t.root, slot: &t.root}}
	for queue.Len() > 0 {
		c := heap.Pop(&queue).(candidate[F, Node[F, B, V]])
		merged := c.node.Box.Union(box).Surface()
		if cost := c.inherited + merged; cost <= bestCost {
			best, bestSlot, bestCost = c.node, c.slot, cost
		}
		inherited := c.inherited + merged - c.node.Box.Surface()
		if c.node.leaf || inherited+boxCost >= bestCost {
			continue
		}
		for i := range c.node.children {
			heap.Push(&queue, candidate[F, Node[F, B, V]]{
				node:      c.node.children[i],
				slot:      &c.node.children[i],
				inherited: inherited,
			})
		}
	}

	parent := &Node[F, B, V]{
		Box:      best.Box.Union(box),
		parent:   best.parent,
		children: [2]*Node[F, B, V]{best, n},
	}
	*bestSlot = parent
	best.parent, n.parent = parent, parent

	for p := parent; p != nil; p = p.parent {
		p.refit()
		t.rotate(p)
	}
	return n
}

// Delete прибирає лист з дерева і повертає його значення
func (t *Tree[F, B, V]) Delete(n *Node[F, B, V]) V {
	t.count--
	if n.parent == nil {
		t.root = nil
		return n.Value
	}
	sib := n.sibling()
	grand := n.parent.parent
	if grand == nil {
		t.root = sib
		sib.parent = nil
		return n.Value
	}
	*grand.slot(n.parent) = sib
	sib.parent = grand
	for p := grand; p != nil; p = p.parent {
		p.refit()
		t.rotate(p)
	}
	return n.Value
}

// rotate міняє дитину вузла з його братом, якщо це зменшує периметр
func (t *Tree[F, B, V]) rotate(n *Node[F, B, V]) {
	if n.leaf || n.parent == nil {
		return
	}
	sib := n.sibling()
	current := n.Box.Surface()
	for i := range n.children {
		keep := n.children[1-i]
		if keep.Box.Union(sib.Box).Surface() >= current {
			continue
		}
		swapped := n.children[i]
		*n.parent.slot(sib) = swapped
		swapped.parent = n.parent
		n.children[i] = sib
		sib.parent = n
		n.refit()
		return
	}
}

// Find викликає visit для кожного листа, чий об'єм проходить test.
// visit повертає false щоб зупинити пошук.
func (t *Tree[F, B, V]) Find(test func(B) bool, visit func(*Node[F, B, V]) bool) {
	t.root.walk(test, visit)
}

// String повертає структуру дерева для логів та тестів
func (t *Tree[F, B, V]) String() string {
	if t.root == nil {
		return "{}"
	}
	return t.root.String()
}

func (n *Node[F, B, V]) String() string {
	if n.leaf {
		return fmt.Sprint(n.Value)
	}
	return fmt.Sprintf("{%v, %v}", n.children[0], n.children[1])
}

// TouchPoint - умова пошуку об'ємів що містять точку
func TouchPoint[P any, B interface{ WithIn(P) bool }](point P) func(B) bool {
	return func(bound B) bool { return bound.WithIn(point) }
}

// TouchBound - умова пошуку об'ємів що перетинаються з other
func TouchBound[B interface{ Touch(B) bool }](other B) func(B) bool {
	return func(bound B) bool { return bound.Touch(other) }
}

// candidates - купа кандидатів у сусіди, впорядкована за накопиченою ціною
type (
	candidates[F constraints.Float, N any] []candidate[F, N]
	candidate[F constraints.Float, N any]  struct {
		node      *N
		slot      **N
		inherited F
	}
)

func (h candidates[F, N]) Len() int           { return len(h) }
func (h candidates[F, N]) Less(i, j int) bool { return h[i].inherited < h[j].inherited }
func (h candidates[F, N]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *candidates[F, N]) Push(x any)        { *h = append(*h, x.(candidate[F, N])) }
func (h *candidates[F, N]) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]
	return x
}
