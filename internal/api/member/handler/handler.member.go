// Package memberhdl - Handler cho domain Member.
package memberhdl

import (
	"fmt"

	basehdl "grip_backend/internal/api/base/handler"
	memberdto "grip_backend/internal/api/member/dto"
	membermodels "grip_backend/internal/api/member/models"
	membersvc "grip_backend/internal/api/member/service"
)

// MemberHandler xử lý các route liên quan đến thành viên
type MemberHandler struct {
	*basehdl.BaseHandler[membermodels.Member, memberdto.MemberCreateInput, memberdto.MemberUpdateInput]
	MemberService *membersvc.MemberService
}

// NewMemberHandler tạo instance mới của MemberHandler
func NewMemberHandler() (*MemberHandler, error) {
	memberService, err := membersvc.NewMemberService()
	if err != nil {
		return nil, fmt.Errorf("tạo MemberService: %w", err)
	}
	return &MemberHandler{
		BaseHandler:   basehdl.NewBaseHandler[membermodels.Member, memberdto.MemberCreateInput, memberdto.MemberUpdateInput](memberService),
		MemberService: memberService,
	}, nil
}

// VisitorHandler xử lý các route liên quan đến khách mời
type VisitorHandler struct {
	*basehdl.BaseHandler[membermodels.Visitor, memberdto.VisitorCreateInput, memberdto.VisitorUpdateInput]
	VisitorService *membersvc.VisitorService
}

// NewVisitorHandler tạo instance mới của VisitorHandler
func NewVisitorHandler() (*VisitorHandler, error) {
	visitorService, err := membersvc.NewVisitorService()
	if err != nil {
		return nil, fmt.Errorf("tạo VisitorService: %w", err)
	}
	return &VisitorHandler{
		BaseHandler:    basehdl.NewBaseHandler[membermodels.Visitor, memberdto.VisitorCreateInput, memberdto.VisitorUpdateInput](visitorService),
		VisitorService: visitorService,
	}, nil
}
