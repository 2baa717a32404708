// Package session 描述一次会话中界面所处的页面，以及正在编辑的菜园。
//
// State 是值类型：每个转换都返回新的 State ，被拒绝的转换返回错误且原值不变。
package session

import "errors"

type Page string

const (
	PageLogin        Page = "login"
	PageRegistration Page = "registration"
)

type View string

const (
	ViewHome         View = "home"
	ViewFeed         View = "feed"
	ViewCreateGarden View = "create_garden"
	ViewAdminPanel   View = "admin_panel"
)

var (
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrAlreadyLoggedIn = errors.New("already logged in")
	ErrViewDenied      = errors.New("view denied")
	ErrUnknownView     = errors.New("unknown view")
	ErrNotOnPage       = errors.New("action not available on this page")
)

// Identity 是登录用户的快照，管理员标志在账号创建后不会改变
type Identity struct {
	ID      uint   `json:"user_id"`
	Name    string `json:"nome"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type State struct {
	Identity *Identity `json:"identity"`

	// 未登录时使用
	Page Page `json:"page,omitempty"`

	// 登录后使用
	View            View  `json:"current_view,omitempty"`
	EditingGardenID *uint `json:"editing_garden_id,omitempty"`
	ReturnView      View  `json:"return_view,omitempty"` // 结束编辑后回到的页面
}

// Initial 是新会话的状态：未登录，登录页
func Initial() State {
	return State{Page: PageLogin}
}

func (s State) LoggedIn() bool {
	return s.Identity != nil
}

func (s State) IsAdmin() bool {
	return s.Identity != nil && s.Identity.IsAdmin
}

func (s State) Editing() bool {
	return s.EditingGardenID != nil
}

func (s State) ShowRegistration() (State, error) {
	if s.LoggedIn() {
		return s, ErrAlreadyLoggedIn
	}
	if s.Page != PageLogin {
		return s, ErrNotOnPage
	}

	return State{Page: PageRegistration}, nil
}

func (s State) BackToLogin() (State, error) {
	if s.LoggedIn() {
		return s, ErrAlreadyLoggedIn
	}
	if s.Page != PageRegistration {
		return s, ErrNotOnPage
	}

	return State{Page: PageLogin}, nil
}

// LogIn 只能从登录页进入，登录成功后到首页
func (s State) LogIn(identity Identity) (State, error) {
	if s.LoggedIn() {
		return s, ErrAlreadyLoggedIn
	}
	if s.Page != PageLogin {
		return s, ErrNotOnPage
	}

	return State{
		Identity: &identity,
		View:     ViewHome,
	}, nil
}

// LogOut 无条件清除身份
func (s State) LogOut() State {
	return Initial()
}

// Navigate 切换页面，同时放弃正在进行的编辑
func (s State) Navigate(view View) (State, error) {
	if !s.LoggedIn() {
		return s, ErrNotLoggedIn
	}

	switch view {
	case ViewHome, ViewFeed, ViewCreateGarden:
	case ViewAdminPanel:
		if !s.Identity.IsAdmin {
			return s, ErrViewDenied
		}
	default:
		return s, ErrUnknownView
	}

	return State{
		Identity: s.Identity,
		View:     view,
	}, nil
}

func (s State) BeginEdit(gardenID uint) (State, error) {
	if !s.LoggedIn() {
		return s, ErrNotLoggedIn
	}

	next := s
	next.EditingGardenID = &gardenID
	if !s.Editing() {
		next.ReturnView = s.View
	}
	return next, nil
}

// EndEdit 在保存或取消后调用，没有编辑时不做任何改变
func (s State) EndEdit() State {
	if !s.Editing() {
		return s
	}

	next := s
	next.EditingGardenID = nil
	if s.ReturnView != "" {
		next.View = s.ReturnView
	}
	next.ReturnView = ""
	return next
}
